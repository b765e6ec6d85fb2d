// Package tui runs asteroids sessions in the terminal with Bubble Tea.
// It maps key presses to held controls, drives the fixed-rate simulation
// and hosts the title, options, ending and history screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// game that scheduled it so ticks from an abandoned game are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
