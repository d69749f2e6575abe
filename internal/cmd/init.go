package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/generator"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/output"
)

var initDir string

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new monorepo workspace",
		Long: `Scaffold the workspace files a libgen monorepo needs:
pnpm-workspace.yaml, nx.json, tsconfig.base.json, and the libs/ root.

Examples:
  # Initialize the current directory
  libgen init

  # Initialize a specific directory
  libgen init --dir ./my-workspace`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().StringVarP(&initDir, "dir", "d", ".", "Directory to initialize")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(initDir)
	if err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}

	entries := make([]output.FileEntry, 0, 4)
	dispatcher := generator.NewDispatcher(generator.DefaultRegistry())
	if err := dispatcher.InitWorkspace(cmd.Context(), root, func(path string) {
		entries = append(entries, output.FileEntry{Path: path})
	}); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Initialized workspace in " + output.StyleNoun.Render(root)))
	output.Print(output.RenderFileTree(root, entries))
	return nil
}
