package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/controls"
)

// Terminals report presses and auto-repeats but never releases, so a key
// counts as held for a window after its last press. The first window
// covers the delay before auto-repeat starts.
const (
	DefaultInitialHold = 450 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// KeyTracker turns terminal key presses into held key state.
type KeyTracker struct {
	InitialHold time.Duration
	RepeatHold  time.Duration

	until map[controls.KeyCode]time.Time
	last  map[controls.KeyCode]time.Time
	now   time.Time
}

// NewKeyTracker creates a tracker with the default hold windows.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{
		InitialHold: DefaultInitialHold,
		RepeatHold:  DefaultRepeatHold,
		until:       make(map[controls.KeyCode]time.Time),
		last:        make(map[controls.KeyCode]time.Time),
	}
}

// Press records a press of k at t and reports whether it is a fresh tap.
// A press less than RepeatHold after the previous press of k is taken as
// terminal auto-repeat.
func (kt *KeyTracker) Press(k controls.KeyCode, t time.Time) bool {
	prev, seen := kt.last[k]
	kt.last[k] = t
	fresh := !seen || t.Sub(prev) >= kt.RepeatHold

	hold := kt.InitialHold
	if end, ok := kt.until[k]; ok && t.Before(end) {
		hold = kt.RepeatHold
		// A repeat never shortens the current window.
		if t.Add(hold).Before(end) {
			return fresh
		}
	}
	kt.until[k] = t.Add(hold)
	return fresh
}

// Advance moves the tracker clock to t and forgets expired keys.
func (kt *KeyTracker) Advance(t time.Time) {
	kt.now = t
	for k, end := range kt.until {
		if !t.Before(end) {
			delete(kt.until, k)
		}
	}
}

// IsDown reports whether k is held at the current tracker time.
func (kt *KeyTracker) IsDown(k controls.KeyCode) bool {
	end, ok := kt.until[k]
	return ok && kt.now.Before(end)
}

// Release forgets every key.
func (kt *KeyTracker) Release() {
	clear(kt.until)
	clear(kt.last)
}

// KeyCodeFromMsg returns the bindable key code for a key message.
func KeyCodeFromMsg(msg tea.KeyMsg) (controls.KeyCode, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return controls.KeyUp, true
	case tea.KeyDown:
		return controls.KeyDown, true
	case tea.KeyLeft:
		return controls.KeyLeft, true
	case tea.KeyRight:
		return controls.KeyRight, true
	case tea.KeySpace:
		return controls.KeySpace, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt {
			return 0, false
		}
		return controls.Normalize(controls.KeyCode(msg.Runes[0])), true
	}
	return 0, false
}

// SessionKeyMap holds the fixed keys used outside the rebindable controls.
type SessionKeyMap struct {
	Start   key.Binding
	Options key.Binding
	History key.Binding
	Pause   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultSessionKeyMap returns the default session keys.
func DefaultSessionKeyMap() SessionKeyMap {
	return SessionKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Options: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "options"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the title help line.
func (k SessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Options, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Options, k.History},
		{k.Pause, k.Back, k.Quit},
	}
}
