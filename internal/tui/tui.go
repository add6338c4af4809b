package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard in the alternate screen and blocks until the
// user quits or cfg.Context is cancelled.
func Run(cfg Config) error {
	m := New(cfg)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if cfg.Context != nil {
		opts = append(opts, tea.WithContext(cfg.Context))
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && cfg.Context != nil && cfg.Context.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running dashboard: %w", err)
	}
	return nil
}
