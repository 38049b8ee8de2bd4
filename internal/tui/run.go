package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or ctx is
// canceled. Load failures do not end the program; they render as the
// degraded no-data state.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Provider == nil {
		return fmt.Errorf("provider is required")
	}

	p := tea.NewProgram(newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dashboard exited: %w", err)
	}
	return nil
}
