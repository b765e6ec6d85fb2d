package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// MaxParticles is the capacity of the particle array.
const MaxParticles = 100

// Particle is a short-lived explosion dot. Velocity is in world units per frame.
type Particle struct {
	Position core.Vec2
	Velocity core.Vec2
	Lifetime float64
}

// ParticleSystem stores live particles densely in [0, count).
// Removal swaps the last live particle into the freed slot, so order is not preserved.
type ParticleSystem struct {
	items [MaxParticles]Particle
	count int
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return ps.count
}

// At returns the i-th live particle.
func (ps *ParticleSystem) At(i int) Particle {
	return ps.items[i]
}

// Add appends a particle. It returns false when the array is full.
func (ps *ParticleSystem) Add(p Particle) bool {
	if ps.count == MaxParticles {
		return false
	}
	ps.items[ps.count] = p
	ps.count++
	return true
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.count = 0
}

// Update ages every particle by dt, removes expired ones and moves the rest.
// k is the per-frame rate factor.
func (ps *ParticleSystem) Update(dt, k, width, height float64) {
	i := 0
	for i < ps.count {
		p := &ps.items[i]
		p.Lifetime -= dt
		if p.Lifetime < 0 {
			ps.count--
			ps.items[i] = ps.items[ps.count]
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Scale(k))
		p.Position.X = core.Wrap(p.Position.X, 0, width)
		p.Position.Y = core.Wrap(p.Position.Y, 0, height)
		i++
	}
}
