package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/controls"
)

// OptionsModel rebinds the ship controls. Every key press binds the control
// under the cursor; Enter keeps the result, Esc or Backspace discards it.
type OptionsModel struct {
	editor    *controls.Editor
	width     int
	confirmed bool
	cancelled bool
}

// NewOptionsModel starts editing a copy of b.
func NewOptionsModel(b controls.Bindings, width int) OptionsModel {
	return OptionsModel{editor: controls.NewEditor(b), width: width}
}

// Update handles key presses.
func (m OptionsModel) Update(msg tea.Msg) (OptionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if _, ok := m.editor.Apply(); ok {
				m.confirmed = true
			}
			return m, nil
		case tea.KeyEsc, tea.KeyBackspace:
			m.cancelled = true
			return m, nil
		}
		k, ok := KeyCodeFromMsg(msg)
		if !ok {
			m.editor.Err = fmt.Errorf("%w: %s", controls.ErrInvalidKey, msg.String())
			return m, nil
		}
		m.editor.Press(k)
	}
	return m, nil
}

// Bindings returns the edited bindings once confirmed.
func (m OptionsModel) Bindings() (controls.Bindings, bool) {
	if !m.confirmed {
		return controls.Bindings{}, false
	}
	return m.editor.Apply()
}

// Confirmed reports that the player saved the bindings.
func (m OptionsModel) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports that the player discarded the changes.
func (m OptionsModel) Cancelled() bool {
	return m.cancelled
}

// View renders the control list.
func (m OptionsModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("CONTROLS"), m.width))
	b.WriteString("\n\n")

	for c := controls.Control(0); c < controls.ControlCount; c++ {
		cursor := "  "
		line := fmt.Sprintf("%-10s  %s", c, controls.KeyName(m.editor.Bindings[c]))
		if c == m.editor.Cursor {
			cursor = "> "
			line = selected.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case errors.Is(m.editor.Err, controls.ErrDuplicateKeys):
		b.WriteString(centerText(errStyle.Render("Duplicate keys"), m.width))
	case m.editor.Err != nil:
		b.WriteString(centerText(errStyle.Render("Invalid key"), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(dim.Render("press a key to bind  |  enter: save  |  esc: cancel"), m.width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
