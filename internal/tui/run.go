package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/actionshrimp/gitlad/internal/core/logging"
)

// Run starts the TUI program. It refuses to start when stdout is not a
// terminal, since the alternate screen would be written into a pipe.
func Run(opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	log := logging.Component("tui")
	log.Debug().Int("files", len(opts.Files)).Int("pr", opts.PR).Msg("starting interface")

	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}
