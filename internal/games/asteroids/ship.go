package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const debrisCount = 3

// Ship is the player's vessel plus the decorative objects it owns for the
// whole session: two thrust flares and the fragments shown when it breaks.
type Ship struct {
	body   Handle
	flares [2]Handle
	debris [debrisCount]Handle

	fireHeld  bool
	thrustCue float64
}

// initShip acquires the ship's objects from the pool.
func (g *Game) initShip() {
	s := &g.ship
	s.body = g.pool.Acquire()
	g.pool.Get(s.body).Init(shipShape)
	for i := range s.flares {
		s.flares[i] = g.pool.Acquire()
		g.pool.Get(s.flares[i]).Init(thrustShapes[i])
	}
	for i := range s.debris {
		s.debris[i] = g.pool.Acquire()
		g.pool.Get(s.debris[i]).Init(debrisShape)
	}
	g.resetShip()
}

// resetShip parks the ship, stopped and hidden, at the centre of the world.
func (g *Game) resetShip() {
	body := g.pool.Get(g.ship.body)
	body.Active = false
	body.Position = core.V(g.width/2, g.height/2)
	body.Velocity = core.Vec2{}
	body.Rotation = 0
	body.AngularVelocity = 0
	body.Transform(g.cfg.World.Scale)
	g.ship.fireHeld = false
	g.ship.thrustCue = 0
	g.setFlares(false)
	g.resetDebris()
}

func (g *Game) resetDebris() {
	for _, h := range g.ship.debris {
		g.pool.Get(h).Active = false
	}
}

func (g *Game) setFlares(on bool) {
	for _, h := range g.ship.flares {
		g.pool.Get(h).Active = on
	}
}

// hideShip takes the ship and its flares off the field without moving it.
func (g *Game) hideShip() {
	g.shipObject().Active = false
	g.setFlares(false)
}

// shipObject returns the ship's body.
func (g *Game) shipObject() *Object {
	return g.pool.Get(g.ship.body)
}

// updateShip applies one frame of player control.
func (g *Game) updateShip(in core.InputFrame) {
	ship := g.shipObject()
	if !ship.Active {
		g.ship.fireHeld = in.Has(core.ActionFire)
		return
	}
	cfg := g.cfg.Ship
	k := g.rateFactor()

	if in.Has(core.ActionLeft) {
		ship.Rotation -= cfg.RotationFactor * k
	}
	if in.Has(core.ActionRight) {
		ship.Rotation += cfg.RotationFactor * k
	}
	ship.Rotation = core.Wrap(ship.Rotation, 0, 360)

	if in.Has(core.ActionHyperspace) && g.hyperspace > 0 {
		g.enterHyperspace()
		return
	}

	ship.Velocity = ship.Velocity.Scale(math.Pow(cfg.DecelerationFactor, k))

	forward := core.Up.RotateDeg(ship.Rotation)
	thrusting := in.Has(core.ActionThrust)
	if thrusting {
		ship.Velocity = ship.Velocity.Add(forward.Scale(cfg.AccelerationFactor * k))
		g.ship.thrustCue -= g.dt
		if g.ship.thrustCue <= 0 {
			g.emit(core.CueThrust)
			g.ship.thrustCue = cfg.ThrustCueInterval
		}
	} else {
		g.ship.thrustCue = 0
	}

	ship.Velocity = ship.Velocity.ClampLength(0, cfg.MaxSpeed)
	if ship.Velocity.Length() < cfg.SpeedCutoff {
		ship.Velocity = core.Vec2{}
	}

	g.setFlares(thrusting)
	for _, h := range g.ship.flares {
		flare := g.pool.Get(h)
		flare.Position = ship.Position
		flare.Velocity = ship.Velocity
		flare.Rotation = ship.Rotation
	}

	fire := in.Has(core.ActionFire)
	if fire && !g.ship.fireHeld {
		g.spawnBullet(playerBullets, ship.Position, forward.Scale(g.cfg.Bullets.Speed))
	}
	g.ship.fireHeld = fire
}

// enterHyperspace hides the ship, relocates it and starts the Hyperspace state.
func (g *Game) enterHyperspace() {
	ship := g.shipObject()
	g.hyperspace--
	ship.Active = false
	ship.Position = g.findSafePosition()
	ship.Transform(g.cfg.World.Scale)
	g.setFlares(false)
	g.setState(StateHyperspace)
	g.logger.Debug("hyperspace", "pos", ship.Position, "charges", g.hyperspace)
}

// findSafePosition samples random positions until one keeps clear of every
// asteroid. After the attempt budget it returns the sample with the most clearance.
func (g *Game) findSafePosition() core.Vec2 {
	scale := g.cfg.World.Scale
	safety := g.cfg.Ship.HyperspaceRadius * scale
	attempts := g.cfg.Ship.HyperspaceAttempts
	if attempts < 1 {
		attempts = 1
	}

	var best core.Vec2
	bestClearance := math.Inf(-1)
	for i := 0; i < attempts; i++ {
		p := core.V(g.randFloat(0, g.width), g.randFloat(0, g.height))
		clearance := math.Inf(1)
		for j := range g.asteroids {
			a := &g.asteroids[j]
			if !a.body.Valid() {
				continue
			}
			obj := g.pool.Get(a.body)
			if !obj.Active {
				continue
			}
			r := g.cfg.Asteroids.Radii[a.Size] * scale * 1.2
			c := p.Distance(obj.Position) - r - safety
			if c < clearance {
				clearance = c
			}
		}
		if clearance >= 0 {
			return p
		}
		if clearance > bestClearance {
			best, bestClearance = p, clearance
		}
	}
	g.logger.Warn("no clear hyperspace exit", "attempts", attempts, "clearance", bestClearance)
	return best
}

// breakShip destroys the ship and scatters its debris from the current hull vertices.
func (g *Game) breakShip() {
	ship := g.shipObject()
	ship.Active = false
	g.setFlares(false)
	g.emit(core.CueBangMedium)

	hull := ship.World()
	for i, h := range g.ship.debris {
		d := g.pool.Get(h)
		d.Active = true
		d.Position = hull[i%len(hull)]
		d.Velocity = d.Position.Sub(ship.Position).Scale(g.randFloat(0.010, 0.020))
		d.Rotation = g.randFloat(0, 360)
		d.AngularVelocity = g.randFloat(0, 2)
		d.Transform(g.cfg.World.Scale)
	}
	g.logger.Info("ship destroyed", "lives", g.lives, "score", g.score)
}
