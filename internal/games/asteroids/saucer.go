package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// SaucerTier selects the saucer's size, score and targeting skill.
type SaucerTier int

const (
	SaucerLarge SaucerTier = iota
	SaucerSmall

	tierCount
)

func (t SaucerTier) String() string {
	if t == SaucerSmall {
		return "small"
	}
	return "large"
}

// Saucer is the single enemy craft. While absent, toNextAction counts down
// the dormancy; while present it times course changes.
type Saucer struct {
	body         Handle
	Tier         SaucerTier
	toNextAction float64
	toShoot      float64
	alive        float64
	ambience     float64
}

func (g *Game) initSaucer() {
	g.saucer.body = g.pool.Acquire()
	g.pool.Get(g.saucer.body).Init(g.saucerShapes[SaucerLarge])
	g.resetSaucer()
}

// resetSaucer removes the saucer and restarts the dormancy timer.
func (g *Game) resetSaucer() {
	g.saucerObject().Active = false
	g.saucer.toNextAction = g.cfg.Saucer.SpawnDelay
	g.saucer.toShoot = 0
	g.saucer.alive = 0
	g.saucer.ambience = 0
}

func (g *Game) saucerObject() *Object {
	return g.pool.Get(g.saucer.body)
}

// updateSaucer runs the saucer state machine for one frame.
func (g *Game) updateSaucer() {
	sc := g.cfg.Saucer
	s := &g.saucer
	obj := g.saucerObject()
	s.toNextAction -= g.dt

	if !obj.Active {
		if s.toNextAction > 0 {
			return
		}
		if g.rng.Float64() < g.difficulty.SpawnChance(sc.SpawnChance, g.score, g.ticks) {
			g.spawnSaucer()
		}
		return
	}

	s.alive += g.dt
	if sc.Lifetime > 0 && s.alive > sc.Lifetime {
		g.logger.Debug("saucer left", "tier", s.Tier)
		g.resetSaucer()
		return
	}

	s.ambience -= g.dt
	if s.ambience <= 0 {
		if s.Tier == SaucerSmall {
			g.emit(core.CueSaucerSmall)
		} else {
			g.emit(core.CueSaucerLarge)
		}
		s.ambience = sc.AmbienceInterval
	}

	if s.toNextAction < 0 {
		turn := 90.0
		if g.rng.Intn(2) == 0 {
			turn = -90
		}
		obj.Velocity = obj.Velocity.RotateDeg(turn + g.perturb(sc.CoursePerturbation))
		s.toNextAction = sc.ActionTime + g.randFloat(0, sc.ActionTime)
	}

	s.toShoot -= g.dt
	if s.toShoot < 0 {
		g.saucerShoot()
		s.toShoot = g.difficulty.ShotInterval(sc.ShotInterval, g.score, g.ticks)
	}
}

// spawnSaucer activates the saucer on a random edge heading in a random direction.
func (g *Game) spawnSaucer() {
	sc := g.cfg.Saucer
	s := &g.saucer

	s.Tier = SaucerLarge
	if g.score >= sc.SmallScoreThreshold && g.rng.Float64() >= sc.LargeChance {
		s.Tier = SaucerSmall
	}

	obj := g.saucerObject()
	obj.Init(g.saucerShapes[s.Tier])
	obj.Active = true
	obj.Position = g.randomEdgePosition()
	speed := g.difficulty.Speed(sc.BaseSpeed, g.score, g.ticks)
	obj.Velocity = core.Up.RotateDeg(g.perturb(360)).Scale(speed)
	obj.Transform(g.cfg.World.Scale)

	s.toNextAction = sc.ActionTime
	s.toShoot = g.difficulty.ShotInterval(sc.ShotInterval, g.score, g.ticks)
	s.alive = 0
	s.ambience = 0
	g.logger.Info("saucer spawned", "tier", s.Tier, "speed", speed)
}

// saucerTarget picks what the saucer shoots at. A large saucer always picks a
// random asteroid; a small one usually aims at the ship.
func (g *Game) saucerTarget() (*Object, bool) {
	switch g.saucer.Tier {
	case SaucerSmall:
		ship := g.shipObject()
		if ship.Active && g.rng.Float64() < g.cfg.Saucer.SmallTargetsShip {
			return ship, true
		}
		return g.randomAsteroid()
	default:
		return g.randomAsteroid()
	}
}

// randomAsteroid returns a uniformly random active asteroid.
func (g *Game) randomAsteroid() (*Object, bool) {
	var candidates [MaxAsteroids]*Object
	n := 0
	for i := range g.asteroids {
		a := &g.asteroids[i]
		if !a.body.Valid() {
			continue
		}
		if obj := g.pool.Get(a.body); obj.Active {
			candidates[n] = obj
			n++
		}
	}
	if n == 0 {
		g.logger.Debug("saucer has no target")
		return nil, false
	}
	return candidates[g.rng.Intn(n)], true
}

// saucerShoot fires a lead shot at the selected target.
func (g *Game) saucerShoot() {
	target, ok := g.saucerTarget()
	if !ok {
		return
	}
	scale := g.cfg.World.Scale
	speed := g.cfg.Bullets.Speed
	pos := g.saucerObject().Position

	aim, solved := Intercept(pos, target.Position, target.Velocity.Scale(scale), speed*scale)
	if !solved {
		g.logger.Debug("no intercept, aiming at target", "target", target.Position)
	}
	g.spawnBullet(enemyBullets, pos, AimAt(pos, aim, speed))
}

// breakSaucer destroys the saucer and scores it.
func (g *Game) breakSaucer() {
	obj := g.saucerObject()
	g.spawnExplosion(obj.Position, g.cfg.Particles.SaucerExplosion)
	g.emit(core.CueBangLarge)
	if g.saucer.Tier == SaucerSmall {
		g.addScore(TargetSaucerSmall)
	} else {
		g.addScore(TargetSaucerLarge)
	}
	g.stats.SaucersDestroyed++
	g.resetSaucer()
}
