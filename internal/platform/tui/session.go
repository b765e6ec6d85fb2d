package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/controls"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/highscore"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Screen identifies the active session screen.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenOptions
	ScreenGame
	ScreenEnding
	ScreenHistory
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenOptions:
		return "options"
	case ScreenGame:
		return "game"
	case ScreenEnding:
		return "ending"
	case ScreenHistory:
		return "history"
	default:
		return "unknown"
	}
}

// SessionConfig holds everything a session needs from its host.
type SessionConfig struct {
	// Variant is the registry ID of the game to play.
	Variant string

	// Runtime carries screen size, tick rate and seed. A zero seed picks a
	// new time-based seed for every game.
	Runtime core.RuntimeConfig

	// Player is the default name recorded in the history.
	Player string

	// Highscores is the shared ladder. Nil disables name entry.
	Highscores *highscore.Store

	// History records finished games. Nil disables history.
	History *storage.Store

	// Bindings are the control keys for this session.
	Bindings controls.Bindings

	// ControlsPath is where rebinds are saved. Empty keeps them in memory.
	ControlsPath string

	Audio    audio.Player
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

// SessionModel is the top-level model: title, options, game, ending and
// history screens for one player.
type SessionModel struct {
	cfg      SessionConfig
	keys     SessionKeyMap
	help     help.Model
	renderer *ScreenRenderer
	screen   Screen
	width    int
	height   int

	title     string
	lastScore int
	gen       int
	result    GameResult
	status    string

	options OptionsModel
	game    GameModel
	ending  EndingModel
	history HistoryModel

	quitting bool
}

// NewSessionModel creates a session on the title screen.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Audio == nil {
		cfg.Audio = audio.Nop{}
	}
	if cfg.Bindings == (controls.Bindings{}) {
		cfg.Bindings = controls.Defaults()
	}
	title := cfg.Variant
	for _, info := range registry.List() {
		if info.ID == cfg.Variant {
			title = info.Title
		}
	}
	return SessionModel{
		cfg:      cfg,
		title:    title,
		keys:     DefaultSessionKeyMap(),
		help:     help.New(),
		renderer: NewScreenRenderer(cfg.Renderer),
		width:    cfg.Runtime.ScreenW,
		height:   cfg.Runtime.ScreenH,
	}
}

// Init starts on the title screen.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Screen returns the active screen.
func (m SessionModel) Screen() Screen {
	return m.screen
}

// Bindings returns the current control keys.
func (m SessionModel) Bindings() controls.Bindings {
	return m.cfg.Bindings
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
		m.help.Width = wsm.Width
	}
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.screen {
	case ScreenOptions:
		return m.updateOptions(msg)
	case ScreenGame:
		return m.updateGame(msg)
	case ScreenEnding:
		return m.updateEnding(msg)
	case ScreenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateTitle(msg)
	}
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cfg.Audio.Close()
	return m, tea.Quit
}

func (m SessionModel) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		return m.quit()
	case key.Matches(km, m.keys.Start):
		return m.startGame()
	case key.Matches(km, m.keys.Options):
		m.status = ""
		m.options = NewOptionsModel(m.cfg.Bindings, m.width)
		m.screen = ScreenOptions
	case key.Matches(km, m.keys.History):
		m.history = NewHistoryModel(m.cfg.History, m.cfg.Variant, m.width, m.height)
		m.screen = ScreenHistory
	}
	return m, nil
}

func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.cfg.Variant)
	if err != nil {
		m.cfg.Logger.Error("cannot create game", "variant", m.cfg.Variant, "error", err)
		m.status = "Cannot start game"
		return m, nil
	}
	if qa, ok := game.(registry.QualifierAware); ok && m.cfg.Highscores != nil {
		qa.SetQualifier(m.cfg.Highscores)
	}

	m.gen++
	m.status = ""
	m.game = NewGameModel(game, m.gen, m.cfg.Runtime, m.cfg.Bindings, m.cfg.Audio, m.renderer, m.cfg.Logger)
	m.screen = ScreenGame
	m.cfg.Logger.Info("game started", "variant", m.cfg.Variant, "player", m.cfg.Player)
	return m, m.game.Init()
}

func (m SessionModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.options, cmd = m.options.Update(msg)

	switch {
	case m.options.Cancelled():
		m.screen = ScreenTitle
	case m.options.Confirmed():
		b, _ := m.options.Bindings()
		m.cfg.Bindings = b
		if m.cfg.ControlsPath != "" {
			if err := controls.Save(m.cfg.ControlsPath, b); err != nil {
				m.cfg.Logger.Error("cannot save controls", "error", err)
				m.status = "Controls not saved"
			}
		}
		m.screen = ScreenTitle
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.game, cmd = m.game.Update(msg)

	switch {
	case m.game.Abandoned():
		m.cfg.Logger.Info("game abandoned", "variant", m.cfg.Variant, "score", m.game.Result().State.Score)
		m.screen = ScreenTitle
		return m, nil
	case m.game.Done():
		m.result = m.game.Result()
		m.lastScore = m.result.State.Score
		if m.result.State.Qualified && m.cfg.Highscores != nil {
			m.ending = NewEndingModel(m.lastScore, m.width, m.cfg.Player)
			m.screen = ScreenEnding
			return m, m.ending.Init()
		}
		m.record(m.cfg.Player)
		m.screen = ScreenTitle
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateEnding(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.ending, cmd = m.ending.Update(msg)

	switch {
	case m.ending.Submitted():
		name := m.ending.Name()
		if _, err := m.cfg.Highscores.Submit(name, m.lastScore); err != nil {
			m.cfg.Logger.Error("cannot submit highscore", "error", err)
			m.status = "Highscore not saved"
		}
		m.record(name)
		m.screen = ScreenTitle
		return m, nil
	case m.ending.Skipped():
		m.record(m.cfg.Player)
		m.screen = ScreenTitle
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)

	switch {
	case m.history.Quitting():
		return m.quit()
	case m.history.GoingBack():
		m.screen = ScreenTitle
		return m, nil
	}
	return m, cmd
}

// record stores the finished game in the history.
func (m SessionModel) record(player string) {
	if m.cfg.History == nil {
		return
	}
	r := m.result
	rec := storage.GameRecord{
		Variant:   m.cfg.Variant,
		Player:    player,
		Score:     r.State.Score,
		Level:     r.State.Level,
		Duration:  int(r.Duration.Seconds()),
		Asteroids: r.Stats.AsteroidsDestroyed,
		Saucers:   r.Stats.SaucersDestroyed,
	}
	if _, err := m.cfg.History.SaveGame(rec); err != nil {
		m.cfg.Logger.Error("cannot record game", "error", err)
	}
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case ScreenOptions:
		return m.options.View()
	case ScreenGame:
		return m.game.View()
	case ScreenEnding:
		return m.ending.View()
	case ScreenHistory:
		return m.history.View()
	default:
		return m.titleView()
	}
}

func (m SessionModel) titleView() string {
	logo := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(logo.Render("A S T E R O I D S"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dim.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("LAST SCORE  %06d", m.lastScore), m.width))
	b.WriteString("\n\n")

	if m.cfg.Highscores != nil {
		b.WriteString(centerText(accent.Render("HIGHSCORES"), m.width))
		b.WriteString("\n")
		for i, e := range m.cfg.Highscores.Table() {
			b.WriteString(centerText(fmt.Sprintf("%d. %-3s %6d", i+1, e.Name, e.Score), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(centerText(accent.Render("ENTER TO START, O FOR OPTIONS"), m.width))
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(centerText(warn.Render(m.status), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(dim.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Run starts a local session in the alternate screen.
func Run(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
