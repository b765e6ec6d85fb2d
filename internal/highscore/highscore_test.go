package highscore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

func TestPosition(t *testing.T) {
	table := Default()
	tests := []struct {
		score int
		want  int
	}{
		{20000, 0},
		{15000, 0},
		{12000, 2},
		{7000, 4},
		{6999, -1},
		{0, -1},
	}

	for _, tt := range tests {
		if got := table.Position(tt.score); got != tt.want {
			t.Errorf("Position(%d) = %d, expected %d", tt.score, got, tt.want)
		}
	}
}

func TestInsert(t *testing.T) {
	table := Default()
	if err := table.Insert(2, "BOB", 12000); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	want := Table{
		{"HAS", 15000},
		{"HAS", 13000},
		{"BOB", 12000},
		{"HAS", 11000},
		{"HAS", 9000},
	}
	if table != want {
		t.Errorf("Insert() table = %v, expected %v", table, want)
	}
}

func TestInsertRejects(t *testing.T) {
	tests := []struct {
		name    string
		at      int
		player  string
		wantErr error
	}{
		{"negative position", -1, "AAA", ErrPosition},
		{"position past end", Size, "AAA", ErrPosition},
		{"long name", 0, "ABCD", ErrName},
		{"comma in name", 0, "A,B", ErrName},
		{"four runes", 0, "ÅÄÖÜ", ErrName},
		{"invalid utf-8", 0, "A\xff", ErrName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Default()
			err := table.Insert(tt.at, tt.player, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Insert() error = %v, expected %v", err, tt.wantErr)
			}
			if table != Default() {
				t.Error("rejected Insert() modified the table")
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Table
		wantErr bool
	}{
		{
			name: "full",
			data: "AAA,5,BBB,4,CCC,3,DDD,2,EEE,1",
			want: Table{{"AAA", 5}, {"BBB", 4}, {"CCC", 3}, {"DDD", 2}, {"EEE", 1}},
		},
		{
			name: "partial keeps defaults",
			data: "ZED,99999",
			want: Table{{"ZED", 99999}, {"HAS", 13000}, {"HAS", 11000}, {"HAS", 9000}, {"HAS", 7000}},
		},
		{
			name:    "odd field count",
			data:    "AAA,5,BBB",
			want:    Default(),
			wantErr: true,
		},
		{
			name:    "single field",
			data:    "AAA",
			want:    Default(),
			wantErr: true,
		},
		{
			name: "long names cut by rune",
			data: "ÅÄÖÜ,5,ABCDE,4",
			want: Table{{"ÅÄÖ", 5}, {"ABC", 4}, {"HAS", 11000}, {"HAS", 9000}, {"HAS", 7000}},
		},
		{
			name:    "bad score",
			data:    "AAA,lots",
			want:    Default(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"", true},
		{"ACE", true},
		{"ÅÄÖ", true},
		{"ÅÄÖÜ", false},
		{"ABCD", false},
		{"A,B", false},
		{"\xff", false},
	}

	for _, tt := range tests {
		if got := ValidName(tt.name); got != tt.want {
			t.Errorf("ValidName(%q) = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"AB", "AB"},
		{"ABCDE", "ABC"},
		{"ÅÄÖÜ", "ÅÄÖ"},
	}

	for _, tt := range tests {
		got := TruncateName(tt.in)
		if got != tt.want || !utf8.ValidString(got) {
			t.Errorf("TruncateName(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	table := Default()
	want := "HAS,15000,HAS,13000,HAS,11000,HAS,9000,HAS,7000"
	if got := table.Format(); got != want {
		t.Errorf("Format() = %q, expected %q", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("Load() of a missing file returned no error")
	}
	if table != Default() {
		t.Errorf("Load() = %v, expected defaults", table)
	}
}

func TestStoreSubmit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores", DefaultFile)
	var buf bytes.Buffer
	store := Open(path, log.New(&buf))

	if !strings.Contains(buf.String(), "no highscore file") {
		t.Errorf("expected missing file to be logged, got %q", buf.String())
	}

	pos, err := store.Submit("BOB", 12000)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if pos != 2 {
		t.Errorf("Submit() position = %d, expected 2", pos)
	}

	pos, err = store.Submit("LOW", 10)
	if err != nil || pos != -1 {
		t.Errorf("Submit() low score = %d, %v; expected -1, nil", pos, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if want := "HAS,15000,HAS,13000,BOB,12000,HAS,11000,HAS,9000"; string(data) != want {
		t.Errorf("file = %q, expected %q", data, want)
	}

	reopened := Open(path, nil)
	if reopened.Table() != store.Table() {
		t.Error("reopened store differs from saved table")
	}
}

func TestStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte("AAA,1,BBB"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	store := Open(path, log.New(&buf))

	if store.Table() != Default() {
		t.Error("malformed file should load defaults")
	}
	if !strings.Contains(buf.String(), "invalid highscore file") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestStoreConcurrentSubmit(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), DefaultFile), nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			store.Submit("P", score)
		}(20000 + i)
	}
	wg.Wait()

	table := store.Table()
	for i := 1; i < Size; i++ {
		if table[i].Score > table[i-1].Score {
			t.Errorf("ladder out of order at %d: %v", i, table)
		}
	}
	if table[0].Score != 20009 {
		t.Errorf("top score = %d, expected 20009", table[0].Score)
	}
}
