// Package tui provides the Bubble Tea front end: the board presenter, the
// history table and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// blinkInterval is the win line flash period.
const blinkInterval = 400 * time.Millisecond

// BlinkMsg toggles the winning line highlight.
type BlinkMsg time.Time

// blinkCmd schedules the next blink.
func blinkCmd() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}
