package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(opts Options) error {
	model := NewModel(opts)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
