package controls

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultFile is the binding file name inside the data directory.
const DefaultFile = "controls.bin"

// fileSize is the encoded size: one little-endian int32 per control.
const fileSize = int(ControlCount) * 4

// ErrFileSize is returned when a binding file has the wrong length.
var ErrFileSize = errors.New("controls: unexpected file size")

// Decode reads bindings from their binary form.
func Decode(data []byte) (Bindings, error) {
	var b Bindings
	if len(data) != fileSize {
		return Defaults(), fmt.Errorf("%w: %d, expected %d", ErrFileSize, len(data), fileSize)
	}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &b); err != nil {
		return Defaults(), fmt.Errorf("controls: cannot decode: %w", err)
	}
	return b, nil
}

// Encode returns the binary form of b.
func Encode(b Bindings) []byte {
	var buf bytes.Buffer
	buf.Grow(fileSize)
	// Writes to a bytes.Buffer cannot fail for fixed-size data.
	_ = binary.Write(&buf, binary.LittleEndian, b)
	return buf.Bytes()
}

// Load reads bindings from path. A missing, truncated or invalid file is
// logged and the defaults returned.
func Load(path string, logger *log.Logger) Bindings {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Info("no control map, using defaults", "path", path)
		return Defaults()
	}
	b, err := Decode(data)
	if err != nil {
		logger.Warn("control map rejected, using defaults", "path", path, "error", err)
		return Defaults()
	}
	if err := b.Validate(); err != nil {
		logger.Warn("control map invalid, using defaults", "path", path, "error", err)
		return Defaults()
	}
	return b
}

// Save writes b to path, creating parent directories.
func Save(path string, b Bindings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("controls: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, Encode(b), 0o644); err != nil {
		return fmt.Errorf("controls: cannot write %s: %w", path, err)
	}
	return nil
}
