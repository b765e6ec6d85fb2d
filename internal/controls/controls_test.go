package controls

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type heldKeys map[KeyCode]bool

func (h heldKeys) IsDown(k KeyCode) bool { return h[k] }

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  KeyCode
		want string
	}{
		{'A', "A"},
		{'~', "~"},
		{KeySpace, "space"},
		{KeyLeft, "left"},
		{KeyUp, "up"},
		{10, ""},
		{127, ""},
		{300, ""},
	}
	for _, tt := range tests {
		if got := KeyName(tt.key); got != tt.want {
			t.Errorf("KeyName(%d) = %q, expected %q", tt.key, got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    KeyCode
		wantErr bool
	}{
		{"a", 'A', false},
		{"Q", 'Q', false},
		{"space", KeySpace, false},
		{"LEFT", KeyLeft, false},
		{"7", '7', false},
		{"enter", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %d, expected %d", tt.in, got, tt.want)
		}
	}
}

func TestBindingsSetNormalizes(t *testing.T) {
	b := Defaults()
	if err := b.Set(ControlFire, 'f'); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if b[ControlFire] != 'F' {
		t.Errorf("Fire = %d, expected 'F'", b[ControlFire])
	}
	if err := b.Set(ControlFire, 9); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Set() with tab error = %v, expected ErrInvalidKey", err)
	}
}

func TestValidateDuplicates(t *testing.T) {
	b := Defaults()
	if err := b.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v", err)
	}
	b[ControlThrust] = 'A'
	if err := b.Validate(); !errors.Is(err, ErrDuplicateKeys) {
		t.Errorf("Validate() = %v, expected ErrDuplicateKeys", err)
	}
}

func TestResolve(t *testing.T) {
	b := Defaults()
	got := b.Resolve(heldKeys{'A': true, KeySpace: true, 'X': true})
	want := core.ActionLeft | core.ActionFire
	if got != want {
		t.Errorf("Resolve() = %v, expected %v", got, want)
	}
}

func TestEditor(t *testing.T) {
	e := NewEditor(Defaults())

	e.Press('j')
	if e.Bindings[ControlLeft] != 'J' || e.Cursor != ControlRight {
		t.Errorf("after first press: bindings=%v cursor=%s", e.Bindings, e.Cursor)
	}

	e.Press(KeyCode(1))
	if !errors.Is(e.Err, ErrInvalidKey) {
		t.Errorf("Err = %v, expected ErrInvalidKey", e.Err)
	}
	if e.Cursor != ControlRight {
		t.Error("invalid key advanced the cursor")
	}

	e.Press('J')
	if !errors.Is(e.Err, ErrDuplicateKeys) {
		t.Errorf("Err = %v, expected ErrDuplicateKeys", e.Err)
	}
	if _, ok := e.Apply(); ok {
		t.Error("Apply() accepted duplicate keys")
	}

	e.Cursor = ControlRight
	e.Press('L')
	b, ok := e.Apply()
	if !ok {
		t.Fatalf("Apply() rejected valid bindings: %v", e.Err)
	}
	if b[ControlRight] != 'L' {
		t.Errorf("Right = %d, expected 'L'", b[ControlRight])
	}
}

func TestEncodeLayout(t *testing.T) {
	data := Encode(Defaults())
	want := []byte{
		'A', 0, 0, 0,
		'D', 0, 0, 0,
		'W', 0, 0, 0,
		' ', 0, 0, 0,
		'S', 0, 0, 0,
	}
	if !bytes.Equal(data, want) {
		t.Errorf("Encode() = %v, expected %v", data, want)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", DefaultFile)
	b := Defaults()
	b[ControlLeft] = KeyLeft
	b[ControlRight] = KeyRight

	if err := Save(path, b); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if got := Load(path, nil); got != b {
		t.Errorf("Load() = %v, expected %v", got, b)
	}
}

func TestLoadRejectsSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	got := Load(path, log.New(&buf))

	if got != Defaults() {
		t.Errorf("Load() = %v, expected defaults", got)
	}
	if !strings.Contains(buf.String(), "rejected") {
		t.Errorf("expected warning, got %q", buf.String())
	}

	if _, err := Decode([]byte{1, 2, 3}); !errors.Is(err, ErrFileSize) {
		t.Errorf("Decode() error = %v, expected ErrFileSize", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if got := Load(filepath.Join(t.TempDir(), "none.bin"), nil); got != Defaults() {
		t.Errorf("Load() = %v, expected defaults", got)
	}
}
