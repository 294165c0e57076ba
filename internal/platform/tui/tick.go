// Package tui runs the game in a terminal through Bubble Tea, locally or over
// SSH, and shows the round journal as a table.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game loop iteration.
type TickMsg time.Time

// tickCmd schedules the next tick after delay. It is re-armed after each tick
// is handled, so the delay does not compensate for the time the tick took.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
