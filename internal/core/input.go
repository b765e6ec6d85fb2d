package core

import "strings"

// Action is a set of semantic game actions, abstracted from physical key presses.
// Several actions can be active in the same frame, so values combine as bit flags.
type Action uint16

const (
	ActionNone       Action = 0
	ActionLeft       Action = 1 << (iota - 1) // rotate counter-clockwise
	ActionRight                               // rotate clockwise
	ActionThrust                              // accelerate forward
	ActionFire                                // shoot (edge triggered)
	ActionHyperspace                          // jump to a random safe position
	ActionPause                               // toggle pause
	ActionConfirm                             // Enter in menus
	ActionBack                                // Esc/Backspace in menus
	ActionQuit                                // leave the session
)

var actionNames = []struct {
	a    Action
	name string
}{
	{ActionLeft, "Left"},
	{ActionRight, "Right"},
	{ActionThrust, "Thrust"},
	{ActionFire, "Fire"},
	{ActionHyperspace, "Hyperspace"},
	{ActionPause, "Pause"},
	{ActionConfirm, "Confirm"},
	{ActionBack, "Back"},
	{ActionQuit, "Quit"},
}

// String returns a human-readable list of the actions in the set.
func (a Action) String() string {
	if a == ActionNone {
		return "None"
	}
	var parts []string
	for _, n := range actionNames {
		if a&n.a != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, "+")
}

// InputFrame is the input state for one simulation tick.
// Held holds every action whose key is currently down.
type InputFrame struct {
	Held Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	f.Held |= a
}

// Has returns true if any of the given actions is held this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Held&a != 0
}
