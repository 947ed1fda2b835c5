package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"bytefit/internal/model"
)

// Run launches the interactive converter with an optional initial value.
func Run(ctx context.Context, initial string, opts model.Options) error {
	m := NewModel(ctx, initial, opts)
	prog := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}
