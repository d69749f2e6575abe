package cmd

import (
	"github.com/spf13/cobra"

	oerrors "github.com/samuelho-dev/monorepo-library-generator-sub003/internal/errors"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/output"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard/tui"
)

// NewWizardCmd creates the wizard command.
func NewWizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Interactively create a library",
		Long: `Walk through library creation step by step: pick a type, name it,
configure options, preview the files, and generate.

Also runs when libgen is invoked with no subcommand.`,
		Args: cobra.NoArgs,
		RunE: runWizard,
	}
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !output.IsTTY() {
		return oerrors.NewExitError(
			oerrors.NewValidationError(
				"the wizard needs an interactive terminal",
				"",
				"Use `libgen generate <type> <name>` in scripts.",
			),
			oerrors.ExitValidationError,
		)
	}

	root, librariesRoot, err := resolveWorkspace()
	if err != nil {
		return err
	}

	return tui.RunWizard(cmd.Context(), buildOps(root), root, librariesRoot)
}
