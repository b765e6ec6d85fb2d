package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

func circlesOverlap(p1 core.Vec2, r1 float64, p2 core.Vec2, r2 float64) bool {
	r := r1 + r2
	return p1.Sub(p2).LengthSqr() <= r*r
}

func pointInCircle(p, center core.Vec2, r float64) bool {
	return p.Sub(center).LengthSqr() <= r*r
}

// checkCollisions resolves every collision for this frame and reports
// whether the ship was destroyed. Asteroid slots are scanned from the top
// down, then the saucer and bullets. The first lethal hit on the ship ends
// the scan.
func (g *Game) checkCollisions() bool {
	scale := g.cfg.World.Scale
	ship := g.shipObject()
	saucer := g.saucerObject()
	shipR := g.cfg.Ship.Radius * scale
	saucerR := g.cfg.Saucer.Radius * scale

	for i := MaxAsteroids - 1; i >= 0; i-- {
		a := &g.asteroids[i]
		if !a.body.Valid() {
			continue
		}
		rock := g.pool.Get(a.body)
		if !rock.Active {
			continue
		}
		r := g.cfg.Asteroids.Radii[a.Size] * scale

		if ship.Active && circlesOverlap(ship.Position, shipR, rock.Position, r) {
			g.breakAsteroid(i)
			g.killShip("asteroid")
			return true
		}

		if saucer.Active && circlesOverlap(saucer.Position, saucerR, rock.Position, r) {
			g.breakSaucer()
			g.breakAsteroid(i)
			continue
		}

		for b := range g.bullets {
			bullet := g.pool.Get(g.bullets[b].body)
			if !bullet.Active {
				continue
			}
			if pointInCircle(bullet.Position, rock.Position, r) {
				g.killBullet(b)
				g.breakAsteroid(i)
				break
			}
		}
	}

	if ship.Active && saucer.Active && circlesOverlap(ship.Position, shipR, saucer.Position, saucerR) {
		g.breakSaucer()
		g.killShip("saucer")
		return true
	}

	if saucer.Active {
		for b := playerBullets.lo; b < playerBullets.hi; b++ {
			bullet := g.pool.Get(g.bullets[b].body)
			if bullet.Active && pointInCircle(bullet.Position, saucer.Position, saucerR) {
				g.killBullet(b)
				g.breakSaucer()
				break
			}
		}
	}

	if ship.Active {
		for b := enemyBullets.lo; b < enemyBullets.hi; b++ {
			bullet := g.pool.Get(g.bullets[b].body)
			if bullet.Active && pointInCircle(bullet.Position, ship.Position, shipR) {
				g.killBullet(b)
				g.killShip("saucer bullet")
				return true
			}
		}
	}

	return false
}

// killShip takes a life and breaks the ship.
func (g *Game) killShip(cause string) {
	g.lives--
	g.logger.Debug("ship hit", "by", cause)
	g.breakShip()
}
