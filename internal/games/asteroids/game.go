// Package asteroids implements the vector-arcade asteroid shooter simulation.
// The ship drifts through a wrap-around field of splitting rocks while an
// enemy saucer hunts it with lead shots. All state lives in a Game value;
// objects come from a fixed pool and nothing allocates during a frame.
package asteroids

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Variant identifiers.
const (
	GameID    = "asteroids"
	ClassicID = "asteroids_classic"
)

// State is the game-flow state.
type State int

const (
	StateLevelStart State = iota
	StateRunning
	StateLevelDone
	StateDying
	StateHyperspace
)

func (s State) String() string {
	switch s {
	case StateLevelStart:
		return "level start"
	case StateRunning:
		return "running"
	case StateLevelDone:
		return "level done"
	case StateDying:
		return "dying"
	case StateHyperspace:
		return "hyperspace"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	}
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
	registry.Register(ClassicID, func() registry.Game { return NewClassic() })
}

// Stats counts gameplay events for the current session.
type Stats struct {
	AsteroidsDestroyed int
	SaucersDestroyed   int
	ShotsFired         int
	ShotsDropped       int
}

// Game is one asteroids session. It is not safe for concurrent use.
type Game struct {
	classic  bool
	override *config.AsteroidsConfig

	cfg        config.AsteroidsConfig
	runtime    core.RuntimeConfig
	logger     *log.Logger
	qualifier  registry.Qualifier
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	pool         *Pool
	ship         Ship
	bullets      [MaxBullets]Bullet
	asteroids    [MaxAsteroids]Asteroid
	saucer       Saucer
	particles    ParticleSystem
	saucerShapes [tierCount]Shape
	scoreTable   [targetCount]int

	width, height float64
	dt            float64

	score      int
	lives      int
	hyperspace int
	level      int
	state      State
	stateTime  float64
	ticks      int

	nextExtraLife       int
	nextExtraHyperspace int

	beat      heartbeat
	paused    bool
	pauseHeld bool
	ended     bool
	qualified bool

	cues  []core.Cue
	stats Stats
}

// New creates a game using the tuning from the config search path.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// NewClassic creates a game that applies per-frame rates literally.
func NewClassic() *Game {
	return &Game{classic: true, logger: log.New(io.Discard)}
}

// NewWithConfig creates a game with explicit tuning, bypassing config files.
func NewWithConfig(cfg config.AsteroidsConfig) *Game {
	return &Game{override: &cfg, logger: log.New(io.Discard)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return ClassicID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Asteroids (Classic Timing)"
	}
	return "Asteroids"
}

// SetLogger routes game logs to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// SetQualifier sets the highscore cutoff consulted when the session ends.
func (g *Game) SetQualifier(q registry.Qualifier) {
	g.qualifier = q
}

func (g *Game) loadConfig() config.AsteroidsConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		g.logger.Warn("using default tuning", "error", err)
	}
	config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	if g.classic {
		cfg.Timing.PerFrameRates = true
		cfg.Difficulty.Enabled = false
	}
	return cfg
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.dt = runtime.TickDelta()

	g.width = g.cfg.World.Width
	g.height = g.cfg.World.Height
	if g.height <= 0 {
		g.height = derivedHeight(g.width, runtime.ScreenW, runtime.ScreenH)
	}

	g.saucerShapes = [tierCount]Shape{
		SaucerLarge: saucerLargeShape,
		SaucerSmall: saucerLargeShape.Scaled(g.cfg.Saucer.SmallScale),
	}
	g.buildScoreTable()

	if g.pool == nil {
		g.pool = NewPool()
	} else {
		g.pool.Reset()
	}
	g.asteroids = [MaxAsteroids]Asteroid{}
	g.particles.Clear()
	g.initShip()
	g.initBullets()
	g.initSaucer()

	gp := g.cfg.Gameplay
	g.score = 0
	g.lives = gp.Lives
	g.hyperspace = gp.HyperspaceCharges
	g.level = 0
	g.nextExtraLife = gp.ExtraLifeInterval
	g.nextExtraHyperspace = gp.ExtraHyperspaceInterval
	g.ticks = 0
	g.beat = heartbeat{}
	g.paused = false
	g.pauseHeld = false
	g.ended = false
	g.qualified = false
	g.stats = Stats{}
	g.cues = g.cues[:0]
	g.setState(StateLevelStart)

	g.logger.Info("session reset", "variant", g.ID(), "seed", runtime.Seed, "world", core.V(g.width, g.height))
}

// derivedHeight keeps the world's aspect equal to the terminal's, counting
// a cell as twice as tall as it is wide.
func derivedHeight(width float64, cols, rows int) float64 {
	if cols <= 0 || rows <= 0 {
		return width * 0.75
	}
	return width * float64(rows*2) / float64(cols)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepDelta(in, g.runtime.TickDelta())
}

// StepDelta advances the simulation by dt seconds.
// Per frame: ship control, particles, saucer, bullets, physics, collisions,
// then state transitions.
func (g *Game) StepDelta(in core.InputFrame, dt float64) core.StepResult {
	g.cues = g.cues[:0]

	pause := in.Has(core.ActionPause)
	if pause && !g.pauseHeld && !g.ended {
		g.paused = !g.paused
	}
	g.pauseHeld = pause

	if g.ended || g.paused || dt <= 0 {
		return g.result()
	}

	g.dt = dt
	g.ticks++
	g.stateTime += dt
	g.awardThresholds()

	switch g.state {
	case StateLevelStart:
		g.hideShip()
		if g.stateTime > g.cfg.Timing.LevelStartDwell {
			g.shipObject().Active = true
			g.createLevel()
			g.setState(StateRunning)
		}

	case StateHyperspace:
		g.updateBeat()
		g.updateSaucer()
		g.updateBullets()
		g.updateParticles()
		g.stepObjects()
		if g.stateTime > g.cfg.Timing.HyperspaceDwell {
			g.shipObject().Active = true
			g.setState(StateRunning)
		}

	case StateRunning:
		g.updateBeat()
		g.updateShip(in)
		g.updateParticles()
		g.updateSaucer()
		g.updateBullets()
		g.stepObjects()
		if g.state != StateRunning {
			// Hyperspace was entered this frame.
			break
		}
		if g.checkCollisions() {
			g.setState(StateDying)
		} else if g.levelDone() {
			g.setState(StateLevelDone)
		}

	case StateLevelDone:
		g.updateShip(in)
		g.updateParticles()
		g.updateBullets()
		g.stepObjects()
		if g.stateTime > g.cfg.Timing.LevelDoneDwell {
			g.level++
			g.resetBullets()
			g.hideShip()
			g.setState(StateLevelStart)
		}

	case StateDying:
		g.stepObjects()
		g.updateParticles()
		if g.stateTime > g.cfg.Timing.DyingDwell {
			if g.lives > 0 {
				g.resetLevel()
			} else {
				g.endSession()
			}
		}
	}

	return g.result()
}

// resetLevel restarts the current level after a lost life.
func (g *Game) resetLevel() {
	g.resetShip()
	g.resetSaucer()
	g.resetBullets()
	g.clearAsteroids()
	g.setState(StateLevelStart)
}

// endSession fires once when the last life is gone.
func (g *Game) endSession() {
	if g.ended {
		return
	}
	g.ended = true
	if g.qualifier != nil {
		g.qualified = g.qualifier.Qualifies(g.score)
	}
	g.logger.Info("session ended", "score", g.score, "level", g.level, "qualified", g.qualified)
}

func (g *Game) setState(s State) {
	if s != g.state {
		g.logger.Debug("state", "from", g.state, "to", s)
	}
	g.state = s
	g.stateTime = 0
}

// stepObjects integrates every active pooled object.
func (g *Game) stepObjects() {
	k := g.rateFactor()
	scale := g.cfg.World.Scale
	g.pool.Each(func(o *Object) {
		o.integrate(g.dt, k, scale, g.width, g.height)
	})
}

// rateFactor converts per-frame constants to the current step: 1 for
// classic timing, dt*referenceFPS otherwise.
func (g *Game) rateFactor() float64 {
	if g.cfg.Timing.PerFrameRates {
		return 1
	}
	return g.dt * g.cfg.Timing.ReferenceFPS
}

func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Cues: g.cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Level:     g.level,
		Lives:     g.lives,
		GameOver:  g.ended,
		Paused:    g.paused,
		Qualified: g.qualified,
	}
}

// Stats returns gameplay counters for the session.
func (g *Game) Stats() Stats {
	return g.stats
}

// randFloat returns a uniform value in [min, max).
func (g *Game) randFloat(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// perturb returns a uniform angle in [-spread/2, spread/2).
func (g *Game) perturb(spread float64) float64 {
	return g.randFloat(-spread/2, spread/2)
}
