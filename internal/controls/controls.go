// Package controls maps the five ship controls to key codes and persists
// the mapping.
package controls

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Control is a rebindable ship control.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlThrust
	ControlFire
	ControlHyperspace

	ControlCount
)

var controlNames = [ControlCount]string{"Left", "Right", "Thrust", "Fire", "Hyperspace"}

var controlActions = [ControlCount]core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionThrust,
	core.ActionFire,
	core.ActionHyperspace,
}

func (c Control) String() string {
	if c < 0 || c >= ControlCount {
		return "unknown"
	}
	return controlNames[c]
}

// Action returns the input action the control drives.
func (c Control) Action() core.Action {
	if c < 0 || c >= ControlCount {
		return core.ActionNone
	}
	return controlActions[c]
}

// KeyCode identifies a key. Printable keys use their uppercase ASCII code;
// arrows use the codes below.
type KeyCode int32

const (
	KeySpace KeyCode = 32
	KeyRight KeyCode = 262
	KeyLeft  KeyCode = 263
	KeyDown  KeyCode = 264
	KeyUp    KeyCode = 265
)

var (
	ErrInvalidKey    = errors.New("controls: invalid key")
	ErrDuplicateKeys = errors.New("controls: duplicate keys")
)

// KeyName returns a display name for k, or "" when k cannot be bound.
func KeyName(k KeyCode) string {
	if k > 32 && k <= 126 {
		return string(rune(k))
	}
	switch k {
	case KeySpace:
		return "space"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return ""
	}
}

// ValidKey reports whether k can be bound.
func ValidKey(k KeyCode) bool {
	return KeyName(k) != ""
}

// Normalize folds lowercase letters to uppercase.
func Normalize(k KeyCode) KeyCode {
	if k >= 'a' && k <= 'z' {
		return k - ('a' - 'A')
	}
	return k
}

// ParseKey reads a key from its display name or a single character.
func ParseKey(s string) (KeyCode, error) {
	switch strings.ToLower(s) {
	case "space", " ":
		return KeySpace, nil
	case "left":
		return KeyLeft, nil
	case "right":
		return KeyRight, nil
	case "up":
		return KeyUp, nil
	case "down":
		return KeyDown, nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	k := Normalize(KeyCode(r[0]))
	if !ValidKey(k) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return k, nil
}

// ParseControl reads a control from its name, case-insensitively.
func ParseControl(s string) (Control, error) {
	for i, name := range controlNames {
		if strings.EqualFold(name, s) {
			return Control(i), nil
		}
	}
	return 0, fmt.Errorf("controls: unknown control %q", s)
}

// Bindings holds one key per control, indexed by Control.
type Bindings [ControlCount]KeyCode

// Defaults returns A, D, W, Space and S.
func Defaults() Bindings {
	return Bindings{'A', 'D', 'W', KeySpace, 'S'}
}

// Set binds c to k after normalizing it.
func (b *Bindings) Set(c Control, k KeyCode) error {
	if c < 0 || c >= ControlCount {
		return fmt.Errorf("controls: unknown control %d", c)
	}
	k = Normalize(k)
	if !ValidKey(k) {
		return fmt.Errorf("%w: %d", ErrInvalidKey, k)
	}
	b[c] = k
	return nil
}

// Validate reports a duplicate or unbindable key.
func (b *Bindings) Validate() error {
	for i, k := range b {
		if !ValidKey(k) {
			return fmt.Errorf("%w: %s has code %d", ErrInvalidKey, Control(i), k)
		}
		for j := i + 1; j < len(b); j++ {
			if b[j] == k {
				return fmt.Errorf("%w: %s and %s", ErrDuplicateKeys, Control(i), Control(j))
			}
		}
	}
	return nil
}

// KeyState reports which keys are currently held.
type KeyState interface {
	IsDown(k KeyCode) bool
}

// Resolve builds the held-action set from the key state.
func (b *Bindings) Resolve(keys KeyState) core.Action {
	var held core.Action
	for c, k := range b {
		if keys.IsDown(k) {
			held |= Control(c).Action()
		}
	}
	return held
}

// Editor rebinds controls one at a time, cycling through them.
// Changes stay local until Validate succeeds and the caller applies them.
type Editor struct {
	Bindings Bindings
	Cursor   Control
	Err      error
}

// NewEditor starts editing a copy of b.
func NewEditor(b Bindings) *Editor {
	return &Editor{Bindings: b}
}

// Press binds k to the control under the cursor and advances the cursor.
// An unbindable key only sets Err.
func (e *Editor) Press(k KeyCode) {
	if err := e.Bindings.Set(e.Cursor, k); err != nil {
		e.Err = err
		return
	}
	e.Err = e.Bindings.Validate()
	e.Cursor = (e.Cursor + 1) % ControlCount
}

// Apply reports whether the edited bindings are valid to save.
func (e *Editor) Apply() (Bindings, bool) {
	if e.Err != nil {
		return Bindings{}, false
	}
	return e.Bindings, true
}
