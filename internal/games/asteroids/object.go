package asteroids

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// MaxVertices is the capacity of an object's world vertex buffer.
// It fits the largest shape (the saucer).
const MaxVertices = 13

// ErrNilShape is raised (as a panic) when an object is initialized without a shape.
var ErrNilShape = errors.New("asteroids: object initialized with empty shape")

// Object is one pooled game entity: a polyline shape moving through the world.
type Object struct {
	Active          bool
	Position        core.Vec2
	Velocity        core.Vec2 // model units per second
	Rotation        float64   // degrees, 0 faces up
	AngularVelocity float64   // degrees per frame

	shape Shape
	world [MaxVertices]core.Vec2
}

// Init resets every field and attaches the shape. The object starts inactive.
func (o *Object) Init(shape Shape) {
	if len(shape) == 0 {
		panic(ErrNilShape)
	}
	if len(shape) > MaxVertices {
		panic(fmt.Errorf("asteroids: shape has %d vertices, limit is %d", len(shape), MaxVertices))
	}
	*o = Object{shape: shape}
}

// SetShape swaps the model shape while keeping motion state.
func (o *Object) SetShape(shape Shape) {
	if len(shape) == 0 {
		panic(ErrNilShape)
	}
	o.shape = shape
}

// Shape returns the object's model template.
func (o *Object) Shape() Shape {
	return o.shape
}

// World returns the world-space vertices computed by the last Transform.
// The slice aliases the object's buffer.
func (o *Object) World() []core.Vec2 {
	return o.world[:len(o.shape)]
}

// Transform recomputes world vertices as rotate(model, rotation) * scale + position.
func (o *Object) Transform(scale float64) {
	for i, v := range o.shape {
		o.world[i] = v.RotateDeg(o.Rotation).Scale(scale).Add(o.Position)
	}
}

// integrate advances position and rotation by one step and wraps both.
// k is the per-frame rate factor applied to the angular velocity.
func (o *Object) integrate(dt, k, scale, width, height float64) {
	o.Position = o.Position.Add(o.Velocity.Scale(scale * dt))
	o.Position.X = core.Wrap(o.Position.X, 0, width)
	o.Position.Y = core.Wrap(o.Position.Y, 0, height)
	o.Rotation = core.Wrap(o.Rotation+o.AngularVelocity*k, 0, 360)
	o.Transform(scale)
}
