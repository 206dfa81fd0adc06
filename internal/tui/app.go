// Package tui is the interactive viewer: live power-source telemetry on top,
// the daemon's collected history charted below.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/varkas/amptop/internal/battery"
	"codeberg.org/varkas/amptop/internal/config"
	"codeberg.org/varkas/amptop/internal/errors"
	"codeberg.org/varkas/amptop/internal/history"
)

func Run(cfg *config.Config, provider battery.Provider, repo history.Repository) error {
	model := NewModel(cfg, provider, repo)
	p := tea.NewProgram(&model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return errors.New().Wrap(errors.ErrInternal, err)
	}

	return nil
}
