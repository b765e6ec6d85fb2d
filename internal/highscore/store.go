package highscore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultFile is the highscore file name inside the data directory.
const DefaultFile = "high.txt"

// Load reads a table from path. Any failure yields the default ladder
// together with the error.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("highscore: cannot read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Save writes the table to path, creating parent directories.
func Save(path string, t Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(t.Format()), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", path, err)
	}
	return nil
}

// Store is a file-backed table shared by concurrent sessions.
type Store struct {
	mu     sync.Mutex
	path   string
	table  Table
	logger *log.Logger
}

// Open loads the table at path. A missing or malformed file is logged and
// the default ladder used; it is never fatal.
func Open(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t, err := Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("no highscore file, using defaults", "path", path)
	case err != nil:
		logger.Warn("invalid highscore file, using defaults", "path", path, "error", err)
	}
	return &Store{path: path, table: t, logger: logger}
}

// Table returns a copy of the current ladder.
func (s *Store) Table() Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// Qualifies reports whether score earns a slot.
func (s *Store) Qualifies(score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Qualifies(score)
}

// Submit inserts the score if it places and persists the ladder.
// It returns the slot taken, or -1.
func (s *Store) Submit(name string, score int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.table.Position(score)
	if pos < 0 {
		return -1, nil
	}
	if err := s.table.Insert(pos, name, score); err != nil {
		return -1, err
	}
	s.logger.Info("new highscore", "name", name, "score", score, "position", pos+1)

	if err := Save(s.path, s.table); err != nil {
		s.logger.Error("cannot save highscores", "error", err)
		return pos, err
	}
	return pos, nil
}

// Reset restores the default ladder and persists it.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = Default()
	return Save(s.path, s.table)
}
