// Package tui provides the Bubble Tea integration for Seat Jam.
// It handles the terminal UI loop, input mapping, menus and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one game step.
type TickMsg time.Time

// tickInterval is the time between steps at tickRate steps per second.
// Non-positive rates fall back to one step per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
