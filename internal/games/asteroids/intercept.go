package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Intercept predicts where a projectile fired from shooter at bulletSpeed
// meets a target moving at constant targetVel. It solves
//
//	(s² - |v|²)t² + 2(v·(shooter - target))t - |shooter - target|² = 0
//
// for its larger root t and returns target + v*t. ok is false when the
// equation has no real non-negative root (the target outruns the bullet);
// the returned point is then the target's current position.
func Intercept(shooter, target, targetVel core.Vec2, bulletSpeed float64) (core.Vec2, bool) {
	d := shooter.Sub(target)
	a := bulletSpeed*bulletSpeed - targetVel.Dot(targetVel)
	b := 2 * targetVel.Dot(d)
	c := -d.Dot(d)

	var t float64
	if math.Abs(a) < 1e-9 {
		// Equal speeds leave the linear equation b*t + c = 0.
		if b == 0 {
			return target, false
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return target, false
		}
		sq := math.Sqrt(disc)
		t = math.Max((-b+sq)/(2*a), (-b-sq)/(2*a))
	}
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return target, false
	}
	return target.Add(targetVel.Scale(t)), true
}

// AimAt returns the velocity of a projectile fired from shooter toward point
// at the given speed. A zero offset fires straight up.
func AimAt(shooter, point core.Vec2, speed float64) core.Vec2 {
	d := point.Sub(shooter)
	l := d.Length()
	if l == 0 {
		return core.Up.Scale(speed)
	}
	return d.Scale(speed / l)
}
