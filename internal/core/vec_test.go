package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, expected -5", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length() = %v, expected 5", got)
	}
	if got := a.Distance(V(0, 0)); got != 5 {
		t.Errorf("Distance() = %v, expected 5", got)
	}
}

func TestVecNormalize(t *testing.T) {
	if got := V(0, 0).Normalize(); got != V(0, 0) {
		t.Errorf("Normalize(zero) = %v, expected zero", got)
	}
	if got := V(3, 4).Normalize(); !nearVec(got, V(0.6, 0.8)) {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", got)
	}
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected Vec2
	}{
		{"zero", 0, Up},
		{"quarter turn faces right", 90, V(1, 0)},
		{"half turn faces down", 180, V(0, 1)},
		{"three quarters faces left", 270, V(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Up.RotateDeg(tc.deg); !nearVec(got, tc.expected) {
				t.Errorf("RotateDeg(%v) = %v, expected %v", tc.deg, got, tc.expected)
			}
		})
	}
}

func TestVecClampLength(t *testing.T) {
	v := V(30, 40)
	if got := v.ClampLength(0, 10); !near(got.Length(), 10) {
		t.Errorf("ClampLength(0, 10).Length() = %v, expected 10", got.Length())
	}
	if got := V(0.3, 0.4).ClampLength(1, 10); !near(got.Length(), 1) {
		t.Errorf("ClampLength(1, 10).Length() = %v, expected 1", got.Length())
	}
	if got := V(3, 4).ClampLength(1, 10); got != V(3, 4) {
		t.Errorf("ClampLength() changed an in-range vector: %v", got)
	}
}

func TestDegToRad(t *testing.T) {
	if !near(DegToRad(180), math.Pi) {
		t.Errorf("DegToRad(180) = %v, expected pi", DegToRad(180))
	}
}
