package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// spawnExplosion scatters n particles from pos in random directions.
func (g *Game) spawnExplosion(pos core.Vec2, n int) {
	pc := g.cfg.Particles
	for i := 0; i < n; i++ {
		dir := core.Up.RotateDeg(g.randFloat(0, 360))
		p := Particle{
			Position: pos,
			Velocity: dir.Scale(g.randFloat(pc.MinSpeed, pc.MaxSpeed)),
			Lifetime: pc.Lifetime,
		}
		if !g.particles.Add(p) {
			g.logger.Warn("out of particles", "dropped", n-i)
			return
		}
	}
}

func (g *Game) updateParticles() {
	g.particles.Update(g.dt, g.rateFactor(), g.width, g.height)
}

// heartbeat alternates two low tones. The tempo follows the asteroid count.
type heartbeat struct {
	timer float64
	odd   bool
}

// beatInterval returns the heartbeat period for n live asteroids.
func beatInterval(n int) float64 {
	n = core.Clamp(n, 1, 10)
	return 0.25 + 1.25*float64(11-n)*0.1
}

func (g *Game) updateBeat() {
	g.beat.timer -= g.dt
	if g.beat.timer > 0 {
		return
	}
	if g.beat.odd {
		g.emit(core.CueBeat2)
	} else {
		g.emit(core.CueBeat1)
	}
	g.beat.odd = !g.beat.odd
	g.beat.timer = beatInterval(g.activeAsteroids())
}
