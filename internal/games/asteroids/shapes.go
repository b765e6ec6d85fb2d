package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Shape is an immutable polyline template in model units.
// Objects reference shapes; they never own or modify them.
type Shape []core.Vec2

// Scaled returns a copy of s with every vertex multiplied by f.
func (s Shape) Scaled(f float64) Shape {
	out := make(Shape, len(s))
	for i, v := range s {
		out[i] = v.Scale(f)
	}
	return out
}

// Radius returns the largest vertex distance from the origin.
func (s Shape) Radius() float64 {
	r := 0.0
	for _, v := range s {
		if l := v.Length(); l > r {
			r = l
		}
	}
	return r
}

var (
	shipShape = Shape{
		{X: -0.25, Y: 0.5},
		{X: 0, Y: -0.5},
		{X: 0.25, Y: 0.5},
		{X: -0.25, Y: 0.5},
	}

	thrustShapes = [2]Shape{
		{{X: -0.2, Y: 0.85}, {X: 0, Y: 0.6}, {X: 0.2, Y: 0.85}},
		{{X: -0.2, Y: 1.15}, {X: 0, Y: 0.9}, {X: 0.2, Y: 1.15}},
	}

	debrisShape = Shape{{X: 0, Y: 0.25}, {X: 0, Y: -0.25}}

	bulletShape = Shape{
		{X: -0.05, Y: -0.05},
		{X: 0.05, Y: -0.05},
		{X: 0.05, Y: 0.05},
		{X: -0.05, Y: 0.05},
		{X: -0.05, Y: -0.05},
	}

	asteroidLargeShape = Shape{
		{X: -0.5, Y: 1.2},
		{X: -1.2, Y: 0.6},
		{X: -1.2, Y: -0.9},
		{X: -0.5, Y: -1.2},
		{X: 0, Y: -0.9},
		{X: 0.5, Y: -1.2},
		{X: 1.2, Y: -0.9},
		{X: 1.0, Y: 0.3},
		{X: 1.2, Y: 0.6},
		{X: 0.5, Y: 1.2},
		{X: -0.5, Y: 1.2},
	}

	asteroidShapes = [sizeCount]Shape{
		SizeLarge:  asteroidLargeShape,
		SizeMedium: asteroidLargeShape.Scaled(0.5),
		SizeSmall:  asteroidLargeShape.Scaled(0.25),
	}

	saucerLargeShape = Shape{
		{X: -0.75, Y: 0.2},
		{X: -0.4, Y: 0.5},
		{X: 0.4, Y: 0.5},
		{X: 0.75, Y: 0.2},
		{X: -0.75, Y: 0.2},
		{X: -0.4, Y: -0.1},
		{X: 0.4, Y: -0.1},
		{X: 0.75, Y: 0.2},
		{X: -0.75, Y: 0.2},
		{X: -0.4, Y: -0.1},
		{X: -0.3, Y: -0.5},
		{X: 0.3, Y: -0.5},
		{X: 0.4, Y: -0.1},
	}
)
