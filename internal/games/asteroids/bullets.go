package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Bullet ranges. Player bullets occupy [0, 5), saucer bullets [5, 10).
const (
	MaxBullets     = 10
	bulletsPerSide = 5
)

type bulletRange struct{ lo, hi int }

var (
	playerBullets = bulletRange{0, bulletsPerSide}
	enemyBullets  = bulletRange{bulletsPerSide, MaxBullets}
)

// Bullet is a projectile. A Lifetime of zero or less marks it available.
type Bullet struct {
	body     Handle
	Lifetime float64
}

func (g *Game) initBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		b.body = g.pool.Acquire()
		g.pool.Get(b.body).Init(bulletShape)
	}
	g.resetBullets()
}

func (g *Game) resetBullets() {
	for i := range g.bullets {
		g.bullets[i].Lifetime = -1
		g.pool.Get(g.bullets[i].body).Active = false
	}
}

// spawnBullet fires from the first available bullet in r. A full range drops
// the shot, logs it, and leaves every bullet untouched.
func (g *Game) spawnBullet(r bulletRange, pos, vel core.Vec2) bool {
	for i := r.lo; i < r.hi; i++ {
		b := &g.bullets[i]
		if b.Lifetime > 0 {
			continue
		}
		b.Lifetime = g.cfg.Bullets.Lifetime
		obj := g.pool.Get(b.body)
		obj.Active = true
		obj.Position = pos
		obj.Velocity = vel
		obj.Rotation = 0
		obj.Transform(g.cfg.World.Scale)
		g.stats.ShotsFired++
		g.emit(core.CueFire)
		return true
	}
	g.stats.ShotsDropped++
	g.logger.Warn("out of bullets", "range", r.lo)
	return false
}

// updateBullets ages every bullet; expired bullets become available.
func (g *Game) updateBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		b.Lifetime = core.ClampF(b.Lifetime-g.dt, -1, 999)
		if b.Lifetime <= 0 {
			g.pool.Get(b.body).Active = false
		}
	}
}

// killBullet retires a bullet after a hit.
func (g *Game) killBullet(i int) {
	g.bullets[i].Lifetime = -1
	g.pool.Get(g.bullets[i].body).Active = false
}
