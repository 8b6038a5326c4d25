package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// tickCmd schedules the next tick. The command is re-armed from Update on
// every tickMsg, giving a steady redraw cadence independent of user input.
func tickCmd(rate time.Duration) tea.Cmd {
	return tea.Tick(rate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
