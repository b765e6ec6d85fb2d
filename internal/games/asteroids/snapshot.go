package asteroids

import "math"

// Snapshot captures the simulation state for determinism checks.
// Object data is flattened as X, Y, VX, VY, Rotation per active object in
// pool slot order.
type Snapshot struct {
	Tick       int
	Score      int
	Lives      int
	Hyperspace int
	Level      int
	State      State
	Asteroids  int
	Particles  int
	SaucerTier SaucerTier
	ObjectData []float64
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.ticks,
		Score:      g.score,
		Lives:      g.lives,
		Hyperspace: g.hyperspace,
		Level:      g.level,
		State:      g.state,
		Asteroids:  g.activeAsteroids(),
		Particles:  g.particles.Len(),
		SaucerTier: g.saucer.Tier,
	}
	g.pool.Each(func(o *Object) {
		snap.ObjectData = append(snap.ObjectData, o.Position.X, o.Position.Y, o.Velocity.X, o.Velocity.Y, o.Rotation)
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Asteroids)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hyperspace) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SaucerTier) //#nosec G115 -- hash computation

	for _, v := range snap.ObjectData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
