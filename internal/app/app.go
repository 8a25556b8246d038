// Package app wires configuration, content and preferences into the
// terminal viewer.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/folio/internal/config"
	"github.com/kyaoi/folio/internal/ui"
)

// Run executes the Bubble Tea program for the portfolio.
func Run(cfg *config.Config, opts Options) (err error) {
	env, err := OpenEnv(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := env.Close(); err == nil {
			err = cerr
		}
	}()

	state, err := LoadInitialState(cfg, env, opts)
	if err != nil {
		return err
	}
	return runProgram(state)
}

func runProgram(state ui.State) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if state.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(ui.NewModel(state), opts...)
	_, err := program.Run()
	return err
}
