package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"lspretty/internal/ui"
)

// Options mirror ui.Options so cli does not import ui directly.
type Options = ui.Options

// Start runs the TUI program and returns any error.
func Start(opts Options) error {
	if _, err := tea.NewProgram(ui.InitialModel(opts), tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
