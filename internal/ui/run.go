package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/bayes-tree/internal/game"
)

// Run boots the TUI program and blocks until it exits. It returns the session summary.
func Run(ctx context.Context, opts Options) (game.Summary, error) {
	m, err := newModel(ctx, opts)
	if err != nil {
		return game.Summary{}, err
	}
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return m.ctrl.Summary(), err
}
