package asteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const eps = 1e-9

func nearVec(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestIntercept(t *testing.T) {
	tests := []struct {
		name   string
		target core.Vec2
		vel    core.Vec2
		speed  float64
		want   core.Vec2
		wantOK bool
	}{
		{"stationary", core.V(10, 0), core.Vec2{}, 2, core.V(10, 0), true},
		{"approaching", core.V(10, 0), core.V(-1, 0), 2, core.V(20.0/3.0, 0), true},
		{"equal speed", core.V(10, 0), core.V(-1, 0), 1, core.V(5, 0), true},
		{"crossing", core.V(0, -10), core.V(1, 0), math.Sqrt(2), core.V(10, -10), true},
		{"outrunning", core.V(10, 0), core.V(5, 0), 1, core.V(10, 0), false},
		{"no real root", core.V(10, 0), core.V(0, 5), 1, core.V(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intercept(core.Vec2{}, tt.target, tt.vel, tt.speed)
			if ok != tt.wantOK {
				t.Errorf("Intercept() ok = %v, expected %v", ok, tt.wantOK)
			}
			if !nearVec(got, tt.want) {
				t.Errorf("Intercept() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestInterceptMeetsBullet(t *testing.T) {
	shooter := core.V(3, 4)
	target := core.V(-20, 15)
	vel := core.V(2, -1)
	speed := 6.0

	p, ok := Intercept(shooter, target, vel, speed)
	if !ok {
		t.Fatal("Intercept() found no solution")
	}
	tTarget := p.Sub(target).Length() / vel.Length()
	tBullet := p.Sub(shooter).Length() / speed
	if math.Abs(tTarget-tBullet) > 1e-6 {
		t.Errorf("arrival times differ: target %v, bullet %v", tTarget, tBullet)
	}
}

func TestAimAt(t *testing.T) {
	if got := AimAt(core.V(0, 0), core.V(3, 4), 10); !nearVec(got, core.V(6, 8)) {
		t.Errorf("AimAt() = %v, expected (6, 8)", got)
	}
	if got := AimAt(core.V(1, 1), core.V(1, 1), 5); !nearVec(got, core.V(0, -5)) {
		t.Errorf("AimAt() with zero offset = %v, expected (0, -5)", got)
	}
}
