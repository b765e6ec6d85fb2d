// Package highscore keeps the five-entry highscore ladder and its text file.
// The file holds name,score pairs joined by commas on a single line.
package highscore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Size is the number of ladder slots.
const Size = 5

// MaxNameLen is the longest accepted player name.
const MaxNameLen = 3

var (
	ErrPosition  = errors.New("highscore: position out of range")
	ErrName      = errors.New("highscore: invalid name")
	ErrMalformed = errors.New("highscore: malformed data")
)

// Entry is one ladder slot.
type Entry struct {
	Name  string
	Score int
}

// Table is the ladder, best score first.
type Table [Size]Entry

// Default returns the ladder used when no file can be read.
func Default() Table {
	return Table{
		{"HAS", 15000},
		{"HAS", 13000},
		{"HAS", 11000},
		{"HAS", 9000},
		{"HAS", 7000},
	}
}

// Position returns the slot a score would take, or -1 when it does not
// place. Scanning starts at the bottom, so a score equal to an existing
// entry ranks above it.
func (t *Table) Position(score int) int {
	found := -1
	for i := Size - 1; i >= 0; i-- {
		if score < t[i].Score {
			break
		}
		found = i
	}
	return found
}

// Qualifies reports whether score earns a slot.
func (t *Table) Qualifies(score int) bool {
	return t.Position(score) >= 0
}

// ValidName reports whether name can be stored. Length is counted in runes.
func ValidName(name string) bool {
	return utf8.ValidString(name) &&
		utf8.RuneCountInString(name) <= MaxNameLen &&
		!strings.ContainsRune(name, ',')
}

// TruncateName cuts name to MaxNameLen runes.
func TruncateName(name string) string {
	if utf8.RuneCountInString(name) <= MaxNameLen {
		return name
	}
	return string([]rune(name)[:MaxNameLen])
}

// Insert places name and score at slot at, shifting lower entries down and
// dropping the last one.
func (t *Table) Insert(at int, name string, score int) error {
	if at < 0 || at >= Size {
		return fmt.Errorf("%w: %d", ErrPosition, at)
	}
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrName, name)
	}
	copy(t[at+1:], t[at:Size-1])
	t[at] = Entry{Name: name, Score: score}
	return nil
}

// Parse reads the comma-joined format. Entries present in data overwrite the
// defaults in order; a field count that is odd or below two is rejected.
func Parse(data string) (Table, error) {
	t := Default()
	fields := strings.Split(strings.TrimSpace(data), ",")
	if len(fields) < 2 || len(fields)%2 != 0 {
		return t, fmt.Errorf("%w: %d fields", ErrMalformed, len(fields))
	}

	for i := 0; i+1 < len(fields) && i/2 < Size; i += 2 {
		name := TruncateName(strings.TrimSpace(fields[i]))
		score, err := strconv.Atoi(strings.TrimSpace(fields[i+1]))
		if err != nil {
			return Default(), fmt.Errorf("%w: score %q", ErrMalformed, fields[i+1])
		}
		t[i/2] = Entry{Name: name, Score: score}
	}
	return t, nil
}

// Format writes the table in the comma-joined format.
func (t *Table) Format() string {
	var sb strings.Builder
	for i, e := range t {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(e.Name)
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(e.Score))
	}
	return sb.String()
}
