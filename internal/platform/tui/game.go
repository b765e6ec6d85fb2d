package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/controls"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// gameOverLinger is how long the final frame stays up before the session
// moves on.
const gameOverLinger = 2 * time.Second

// maxQueuedShots caps fire taps waiting for a tick.
const maxQueuedShots = 3

// statsReporter is implemented by games that count gameplay events.
type statsReporter interface {
	Stats() asteroids.Stats
}

// GameResult summarizes a finished game.
type GameResult struct {
	State    core.GameState
	Stats    asteroids.Stats
	Duration time.Duration
}

// GameModel runs one game at a fixed tick rate.
type GameModel struct {
	game     registry.Game
	gen      int
	screen   *core.Screen
	renderer *ScreenRenderer
	bindings controls.Bindings
	keys     SessionKeyMap
	tracker  *KeyTracker
	player   audio.Player
	config   core.RuntimeConfig
	logger   *log.Logger
	now      func() time.Time

	state       core.GameState
	ticks       int
	overTicks   int
	pausePulse  bool
	fireTaps    int
	fireSent    bool
	done        bool
	abandoned   bool
	pauseBound  bool
	lingerTicks int
}

// NewGameModel prepares a game. The game is reset immediately so State and
// View are valid before the first tick.
func NewGameModel(game registry.Game, gen int, cfg core.RuntimeConfig, bindings controls.Bindings,
	player audio.Player, renderer *ScreenRenderer, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if player == nil {
		player = audio.Nop{}
	}
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}
	if la, ok := game.(registry.LoggerAware); ok && logger != nil {
		la.SetLogger(logger)
	}
	game.Reset(cfg)

	pauseBound := false
	for _, k := range bindings {
		if k == 'P' {
			pauseBound = true
		}
	}

	return GameModel{
		game:        game,
		gen:         gen,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:    renderer,
		bindings:    bindings,
		keys:        DefaultSessionKeyMap(),
		tracker:     NewKeyTracker(),
		player:      player,
		config:      cfg,
		logger:      logger,
		now:         time.Now,
		state:       game.State(),
		pauseBound:  pauseBound,
		lingerTicks: int(gameOverLinger.Seconds() * float64(cfg.TickRate)),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles key presses, resizes and ticks.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || m.done || m.abandoned {
			return m, nil
		}
		m = m.handleTick(msg.Time)
		if m.done {
			return m, nil
		}
		return m, tickCmd(m.config.TickRate, m.gen)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) GameModel {
	if key.Matches(msg, m.keys.Back) {
		m.abandoned = true
		m.tracker.Release()
		return m
	}
	if !m.pauseBound && key.Matches(msg, m.keys.Pause) {
		m.pausePulse = true
		return m
	}
	if k, ok := KeyCodeFromMsg(msg); ok {
		fresh := m.tracker.Press(k, m.now())
		if fresh && k == m.bindings[controls.ControlFire] && m.fireTaps < maxQueuedShots {
			m.fireTaps++
		}
	}
	return m
}

func (m GameModel) handleTick(t time.Time) GameModel {
	if m.state.GameOver {
		m.overTicks++
		if m.overTicks >= m.lingerTicks {
			m.done = true
		}
		return m
	}

	m.tracker.Advance(t)
	in := core.NewInputFrame()
	in.Set(m.bindings.Resolve(m.tracker) &^ core.ActionFire)

	// Each tap is one frame of fire followed by one frame without it.
	switch {
	case m.fireSent:
		m.fireSent = false
	case m.fireTaps > 0:
		in.Set(core.ActionFire)
		m.fireTaps--
		m.fireSent = true
	}
	if m.pausePulse {
		in.Set(core.ActionPause)
		m.pausePulse = false
	}

	result := m.game.Step(in)
	m.state = result.State
	m.player.Play(result.Cues)
	if !m.state.Paused {
		m.ticks++
	}
	if m.state.GameOver && m.logger != nil {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score, "level", m.state.Level)
	}
	return m
}

// Done reports that the game ended and the final frame has been shown.
func (m GameModel) Done() bool {
	return m.done
}

// Abandoned reports that the player left mid-game.
func (m GameModel) Abandoned() bool {
	return m.abandoned
}

// Result returns the outcome so far.
func (m GameModel) Result() GameResult {
	r := GameResult{
		State:    m.state,
		Duration: time.Duration(m.ticks) * time.Second / time.Duration(m.config.TickRate),
	}
	if sr, ok := m.game.(statsReporter); ok {
		r.Stats = sr.Stats()
	}
	return r
}

// View renders the playfield.
func (m GameModel) View() string {
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}
