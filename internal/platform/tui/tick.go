// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, key bindings, tick scheduling and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Epoch identifies the tick stream it belongs to; ticks from an older
// stream are dropped by the controller.
type TickMsg struct {
	Epoch uint64
	Time  time.Time
}

// tickCmd schedules the next tick of the given stream after period.
func tickCmd(period time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, Time: t}
	})
}
