package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Target identifies a destroyed entity for scoring.
type Target int

const (
	TargetNone Target = iota
	TargetAsteroidLarge
	TargetAsteroidMedium
	TargetAsteroidSmall
	TargetSaucerLarge
	TargetSaucerSmall

	targetCount
)

// buildScoreTable fills the per-target points from the config.
// TargetNone scores nothing.
func (g *Game) buildScoreTable() {
	s := g.cfg.Scores
	g.scoreTable = [targetCount]int{
		TargetNone:           -1,
		TargetAsteroidLarge:  s.AsteroidLarge,
		TargetAsteroidMedium: s.AsteroidMedium,
		TargetAsteroidSmall:  s.AsteroidSmall,
		TargetSaucerLarge:    s.SaucerLarge,
		TargetSaucerSmall:    s.SaucerSmall,
	}
}

// addScore credits the points for t. Unknown targets and non-positive
// entries are logged and ignored, so the score never decreases.
func (g *Game) addScore(t Target) {
	if t < 0 || t >= targetCount || g.scoreTable[t] <= 0 {
		g.logger.Warn("ignoring score for unknown target", "target", int(t))
		return
	}
	g.score += g.scoreTable[t]
}

// awardThresholds grants an extra life or hyperspace charge for every
// threshold the score has passed since the last check.
func (g *Game) awardThresholds() {
	gp := g.cfg.Gameplay
	for gp.ExtraLifeInterval > 0 && g.score > g.nextExtraLife {
		g.lives++
		g.nextExtraLife += gp.ExtraLifeInterval
		g.emit(core.CueExtraShip)
		g.logger.Info("extra ship", "lives", g.lives, "score", g.score)
	}
	for gp.ExtraHyperspaceInterval > 0 && g.score > g.nextExtraHyperspace {
		g.hyperspace++
		g.nextExtraHyperspace += gp.ExtraHyperspaceInterval
	}
}
