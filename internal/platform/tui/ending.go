package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/highscore"
)

// EndingModel asks a qualified player for the name to put on the ladder.
type EndingModel struct {
	input     textinput.Model
	score     int
	width     int
	invalid   bool
	submitted bool
	skipped   bool
}

// NewEndingModel starts name entry for score.
func NewEndingModel(score, width int, suggested string) EndingModel {
	ti := textinput.New()
	ti.Placeholder = "AAA"
	ti.CharLimit = highscore.MaxNameLen
	ti.Width = highscore.MaxNameLen + 1
	ti.Prompt = "> "
	ti.SetValue(strings.ToUpper(highscore.TruncateName(suggested)))
	ti.Focus()

	return EndingModel{input: ti, score: score, width: width}
}

// Init starts the cursor blink.
func (m EndingModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles name entry.
func (m EndingModel) Update(msg tea.Msg) (EndingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if highscore.ValidName(m.Name()) && m.Name() != "" {
				m.submitted = true
			} else {
				m.invalid = true
			}
			return m, nil
		case tea.KeyEsc:
			m.skipped = true
			return m, nil
		}
		m.invalid = false
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.input.SetValue(strings.ToUpper(m.input.Value()))
	return m, cmd
}

// Name returns the entered name in uppercase.
func (m EndingModel) Name() string {
	return strings.ToUpper(strings.TrimSpace(m.input.Value()))
}

// Submitted reports that a valid name was entered.
func (m EndingModel) Submitted() bool {
	return m.submitted
}

// Skipped reports that the player declined to enter a name.
func (m EndingModel) Skipped() bool {
	return m.skipped
}

// View renders the prompt.
func (m EndingModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(title.Render("NEW HIGHSCORE"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%06d", m.score), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("YOUR INITIALS", m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	if m.invalid {
		b.WriteString(centerText(errStyle.Render("Enter up to 3 letters"), m.width))
	}
	b.WriteString("\n")
	b.WriteString(centerText(dim.Render("enter: save  |  esc: skip"), m.width))
	b.WriteString("\n")
	return b.String()
}
