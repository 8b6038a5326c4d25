package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Options carries the already-parsed CLI configuration into the session
type Options struct {
	Token    string
	Secret   string
	TickRate time.Duration
	Light    bool
}

// Run starts the interactive session. The bubbletea runtime owns the
// terminal for the duration of the program: it enters the alternate screen,
// reads input on its own goroutine and delivers events to Update one at a
// time. The alternate screen is left and raw mode restored on quit and on
// panic alike.
func Run(opts Options) error {
	m := New(opts)

	// Mouse capture stays off so terminal-native text selection keeps working
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run session: %w", err)
	}
	return nil
}
