package asteroids

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// MaxAsteroids is the number of asteroid slots.
const MaxAsteroids = 100

// ErrNoAsteroidSlot is raised (as a panic) when a split finds no free slot.
var ErrNoAsteroidSlot = errors.New("asteroids: no free asteroid slot")

// Size is an asteroid tier. Splitting moves one step toward SizeSmall.
type Size int

const (
	SizeLarge Size = iota
	SizeMedium
	SizeSmall

	sizeCount
)

func (s Size) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	default:
		return "unknown"
	}
}

var (
	sizeTargets = [sizeCount]Target{TargetAsteroidLarge, TargetAsteroidMedium, TargetAsteroidSmall}
	sizeBangs   = [sizeCount]core.Cue{core.CueBangLarge, core.CueBangMedium, core.CueBangSmall}
)

// Asteroid occupies a slot in the sparse asteroid array.
// An invalid body handle marks the slot empty.
type Asteroid struct {
	body Handle
	Size Size
}

// freeAsteroidSlot returns the first empty slot or -1.
func (g *Game) freeAsteroidSlot() int {
	for i := range g.asteroids {
		if !g.asteroids[i].body.Valid() {
			return i
		}
	}
	return -1
}

// asteroidSpeed returns the launch speed for a tier at the current level.
func (g *Game) asteroidSpeed(s Size) float64 {
	return g.cfg.Asteroids.Speeds[s] + g.cfg.Asteroids.LevelSpeedIncrease*float64(g.level)
}

// addAsteroid spawns a large asteroid at a random point on the world edge.
func (g *Game) addAsteroid() {
	slot := g.freeAsteroidSlot()
	if slot < 0 {
		panic(fmt.Errorf("%w: spawning", ErrNoAsteroidSlot))
	}
	h := g.pool.Acquire()
	obj := g.pool.Get(h)
	obj.Init(asteroidShapes[SizeLarge])
	obj.Active = true
	obj.Position = g.randomEdgePosition()
	obj.Velocity = core.Up.RotateDeg(g.randFloat(0, 360)).Scale(g.asteroidSpeed(SizeLarge))
	obj.AngularVelocity = g.randFloat(-0.5, 0.5)
	obj.Transform(g.cfg.World.Scale)
	g.asteroids[slot] = Asteroid{body: h, Size: SizeLarge}
}

// randomEdgePosition picks a point on one of the four world edges.
func (g *Game) randomEdgePosition() core.Vec2 {
	switch g.rng.Intn(4) {
	case 0:
		return core.V(0, g.randFloat(0, g.height))
	case 1:
		return core.V(g.width, g.randFloat(0, g.height))
	case 2:
		return core.V(g.randFloat(0, g.width), 0)
	default:
		return core.V(g.randFloat(0, g.width), g.height)
	}
}

// breakAsteroid destroys or splits the asteroid in slot i and scores it.
// A small asteroid is removed. Larger ones drop one tier: the original turns
// roughly +90 degrees and a sibling launches roughly -90 degrees from the
// old heading.
func (g *Game) breakAsteroid(i int) {
	a := &g.asteroids[i]
	obj := g.pool.Get(a.body)
	old := a.Size

	g.spawnExplosion(obj.Position, g.cfg.Particles.AsteroidExplosion)
	g.emit(sizeBangs[old])
	g.addScore(sizeTargets[old])
	g.stats.AsteroidsDestroyed++

	if old == SizeSmall {
		obj.Active = false
		g.pool.Release(a.body)
		*a = Asteroid{}
		return
	}

	next := old + 1
	speed := g.asteroidSpeed(next)
	spread := g.cfg.Asteroids.SplitPerturbation
	heading := obj.Velocity

	a.Size = next
	obj.SetShape(asteroidShapes[next])
	obj.Velocity = heading.RotateDeg(90 + g.perturb(spread)).Normalize().Scale(speed)

	slot := g.freeAsteroidSlot()
	if slot < 0 {
		panic(fmt.Errorf("%w: splitting %s asteroid", ErrNoAsteroidSlot, old))
	}
	h := g.pool.Acquire()
	sibling := g.pool.Get(h)
	sibling.Init(asteroidShapes[next])
	sibling.Active = true
	sibling.Position = obj.Position
	sibling.Velocity = heading.RotateDeg(-90 + g.perturb(spread)).Normalize().Scale(speed)
	sibling.AngularVelocity = g.randFloat(-0.5, 0.5)
	sibling.Transform(g.cfg.World.Scale)
	obj.Transform(g.cfg.World.Scale)
	g.asteroids[slot] = Asteroid{body: h, Size: next}
}

// createLevel spawns the opening asteroids for the current level.
func (g *Game) createLevel() {
	ac := g.cfg.Asteroids
	n := core.Clamp(ac.StartingCount+g.level, ac.StartingCount, ac.MaxCount)
	for i := 0; i < n; i++ {
		g.addAsteroid()
	}
	g.logger.Info("level started", "level", g.level, "asteroids", n)
}

// clearAsteroids releases every asteroid.
func (g *Game) clearAsteroids() {
	for i := range g.asteroids {
		if g.asteroids[i].body.Valid() {
			g.pool.Release(g.asteroids[i].body)
			g.asteroids[i] = Asteroid{}
		}
	}
}

// activeAsteroids returns the number of live asteroids.
func (g *Game) activeAsteroids() int {
	n := 0
	for i := range g.asteroids {
		if g.asteroids[i].body.Valid() && g.pool.Get(g.asteroids[i].body).Active {
			n++
		}
	}
	return n
}

// levelDone reports whether the level is cleared: no asteroid and no saucer.
func (g *Game) levelDone() bool {
	return g.activeAsteroids() == 0 && !g.saucerObject().Active
}
