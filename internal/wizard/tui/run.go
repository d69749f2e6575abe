package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/errors"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard"
)

// RunWizard owns the terminal for exactly one wizard session: the
// tea.Program is created, run, and torn down here, so the raw-mode
// acquire/release pair can never be unbalanced.
func RunWizard(ctx context.Context, ops *wizard.Ops, root, librariesRoot string) error {
	p := tea.NewProgram(
		NewModel(ctx, ops, root, librariesRoot),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil
	}
	if m.State().CurrentStep == wizard.StepError {
		err := fmt.Errorf("%w: %s", errors.ErrGeneration, m.State().Error)
		// The alt screen is gone by now, so main still reports the error.
		return errors.NewExitError(err, errors.ExitGeneralError)
	}
	return nil
}
