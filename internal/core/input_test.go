package core

import "testing"

func TestInputFrame(t *testing.T) {
	in := NewInputFrame()
	if in.Has(ActionFire) {
		t.Error("new frame should have no actions")
	}

	in.Set(ActionFire)
	in.Set(ActionLeft)
	if !in.Has(ActionFire) || !in.Has(ActionLeft) {
		t.Errorf("Has() after Set = false, held %v", in.Held)
	}
	if in.Has(ActionThrust) {
		t.Error("Has(ActionThrust) = true, expected false")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionFire, "Fire"},
		{ActionLeft | ActionThrust, "Left+Thrust"},
		{Action(1 << 15), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}

func TestActionBitsDistinct(t *testing.T) {
	seen := Action(0)
	for _, n := range actionNames {
		if seen&n.a != 0 {
			t.Errorf("action %s shares a bit with another action", n.name)
		}
		seen |= n.a
	}
	if ActionLeft != 1 {
		t.Errorf("ActionLeft = %d, expected 1", ActionLeft)
	}
}
