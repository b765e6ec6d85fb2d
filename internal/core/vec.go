package core

import "math"

// Vec2 is a 2D vector in world units. Y grows downward, matching screen rows.
type Vec2 struct {
	X, Y float64
}

// Up is the unit vector pointing toward the top of the screen.
// Rotation 0 faces Up.
var Up = Vec2{X: 0, Y: -1}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSqr returns the squared length of v.
func (v Vec2) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate returns v rotated clockwise on screen by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateDeg is Rotate with the angle in degrees.
func (v Vec2) RotateDeg(deg float64) Vec2 {
	return v.Rotate(DegToRad(deg))
}

// ClampLength returns v with its length limited to [min, max].
// The zero vector is returned unchanged.
func (v Vec2) ClampLength(min, max float64) Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	switch {
	case l < min:
		return v.Scale(min / l)
	case l > max:
		return v.Scale(max / l)
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
