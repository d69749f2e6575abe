// Package cmd provides CLI command implementations.
package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/config"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/generator"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/output"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/workspace"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard"
)

var (
	// Global flags
	configFlag  string
	rootFlag    string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	libgenConfig *config.Config
)

// NewRootCmd creates the root command for the libgen CLI. Running it
// with no subcommand launches the interactive wizard.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "libgen",
		Short:         "Monorepo library generator",
		Long:          `libgen scaffolds typed libraries (contract, data-access, feature, infra, provider, domain) in a pnpm/nx monorepo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
		RunE: runWizard,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: LIBGEN_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Libraries root directory (env: LIBGEN_LIBRARIES_ROOT)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewWizardCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		cfg = (&config.Config{}).WithDefaults()
	}
	libgenConfig = cfg

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"librariesRoot", cfg.LibrariesRoot,
			"defaultPlatform", cfg.DefaultPlatform,
		)
	}
	return nil
}

// resolveWorkspace determines the workspace root and libraries root,
// with precedence: --root flag > config > detection from the current
// directory.
func resolveWorkspace() (root, librariesRoot string, err error) {
	if rootFlag != "" {
		abs, err := filepath.Abs(rootFlag)
		if err != nil {
			return "", "", err
		}
		return filepath.Dir(abs), abs, nil
	}
	if libgenConfig != nil && libgenConfig.LibrariesRoot != "" {
		expanded, err := config.ExpandPath(libgenConfig.LibrariesRoot)
		if err != nil {
			return "", "", err
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return "", "", err
		}
		return filepath.Dir(abs), abs, nil
	}
	ws, err := workspace.Detect(".")
	if err != nil {
		return "", "", err
	}
	return ws.Root, ws.LibrariesRoot, nil
}

// buildOps wires the operations bridge: validation, preview, and
// catalog defaults plus the execution dispatcher and tag scanner.
func buildOps(root string) *wizard.Ops {
	dispatcher := generator.NewDispatcher(generator.DefaultRegistry())
	return wizard.NewOps(dispatcher, dispatcher, workspace.NewTagScanner(root))
}
