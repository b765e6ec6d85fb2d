package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("Right(), Bottom() = %d, %d, expected 30, 25", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name               string
		val, min, max, exp float64
	}{
		{"inside", 5, 0, 10, 5},
		{"exactly max", 10, 0, 10, 0},
		{"past max", 12.5, 0, 10, 2.5},
		{"below min", -2.5, 0, 10, 7.5},
		{"many spans", 35, 0, 10, 5},
		{"angle", 365, 0, 360, 5},
		{"negative angle", -90, 0, 360, 270},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Wrap(tc.val, tc.min, tc.max); got != tc.exp {
				t.Errorf("Wrap(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.exp)
			}
		})
	}
}

func TestWrapStaysInRange(t *testing.T) {
	values := []float64{-1e-18, -1e-9, 1024, 1024 - 1e-13, -1024, 4096.5, 1e9}
	for _, v := range values {
		got := Wrap(v, 0, 1024)
		if got < 0 || got >= 1024 {
			t.Errorf("Wrap(%v, 0, 1024) = %v, out of [0, 1024)", v, got)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 {
		t.Error("Abs should return the magnitude")
	}
}
