package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/samuelho-dev/monorepo-library-generator-sub003/internal/errors"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/generator"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/output"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard"
)

var (
	genDescription     string
	genTags            string
	genScope           string
	genPlatform        string
	genExternalService string
	genDir             string
	genCQRS            bool
	genClientServer    bool
	genYes             bool
)

// NewGenerateCmd creates the generate command, the non-interactive
// counterpart of the wizard.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <type> <name>",
		Short: "Generate a library without the wizard",
		Long: fmt.Sprintf(`Generate a library non-interactively.

Types:
  %s

Examples:
  # Generate a contract library
  libgen generate contract user-api

  # Generate a feature library for the browser with a client/server split
  libgen generate feature checkout --platform browser --client-server

  # Generate a provider library wrapping Stripe
  libgen generate provider payments --external-service stripe`,
			strings.Join(libraryTypeNames(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&genDescription, "description", "d", "", "Library description")
	cmd.Flags().StringVar(&genTags, "tags", "", "Comma-separated project tags")
	cmd.Flags().StringVar(&genScope, "scope", "", "Monorepo scope tag")
	cmd.Flags().StringVar(&genPlatform, "platform", "", "Target platform (node, browser, universal, edge)")
	cmd.Flags().StringVar(&genExternalService, "external-service", "", "External service a provider wraps (defaults to the library name)")
	cmd.Flags().StringVar(&genDir, "dir", "", "Target directory (defaults to <libraries-root>/<type>/<name>)")
	cmd.Flags().BoolVar(&genCQRS, "cqrs", false, "Include CQRS scaffolding")
	cmd.Flags().BoolVar(&genClientServer, "client-server", false, "Include separate client and server entry points")
	cmd.Flags().BoolVarP(&genYes, "yes", "y", false, "Skip the file preview")

	return cmd
}

func libraryTypeNames() []string {
	types := wizard.LibraryTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return names
}

func parseLibraryType(arg string) (wizard.LibraryType, error) {
	for _, t := range wizard.LibraryTypes() {
		if string(t) == arg {
			return t, nil
		}
	}
	return "", oerrors.NewValidationError(
		fmt.Sprintf("unknown library type: %s", arg),
		"",
		fmt.Sprintf("Valid types: %s", strings.Join(libraryTypeNames(), ", ")),
	)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	libType, err := parseLibraryType(args[0])
	if err != nil {
		return err
	}
	name := args[1]

	rules := wizard.DefaultRules()
	if res := rules.ValidateName(name); !res.IsValid {
		return oerrors.NewValidationError(res.Error, "", "")
	}
	if genExternalService != "" {
		if res := rules.ValidateExternalService(genExternalService); !res.IsValid {
			return oerrors.NewValidationError(res.Error, "", "")
		}
	}

	root, librariesRoot, err := resolveWorkspace()
	if err != nil {
		return err
	}

	opts := wizard.Options{
		Description: genDescription,
		Tags:        genTags,
	}
	// Only flags the user set become explicit options; unset stays nil
	// so each generator applies its own default.
	if cmd.Flags().Changed("scope") {
		opts.Scope = &genScope
	}
	if cmd.Flags().Changed("platform") {
		opts.Platform = &genPlatform
	}
	if cmd.Flags().Changed("cqrs") {
		opts.IncludeCQRS = &genCQRS
	}
	if cmd.Flags().Changed("client-server") {
		opts.IncludeClientServer = &genClientServer
	}

	targetDir := genDir
	if targetDir == "" {
		targetDir = wizard.TargetDirectory(librariesRoot, libType, name)
	}

	plan := wizard.FilePlan(libType, name, opts)
	res := wizard.Result{
		LibraryType:     libType,
		LibraryName:     name,
		ExternalService: genExternalService,
		TargetDirectory: targetDir,
		Options:         opts,
		FilesToCreate:   plan,
	}

	if !genYes {
		entries := make([]output.FileEntry, 0, len(plan))
		for _, f := range plan {
			entries = append(entries, output.FileEntry{
				Path:        f.Path,
				Description: f.Description,
				Optional:    f.Optional,
			})
		}
		output.Print(output.RenderFileTree(targetDir, entries))
		output.Println("")
	}

	var created []string
	dispatcher := generator.NewDispatcher(generator.DefaultRegistry())
	err = output.RunWithSpinner(cmd.Context(), func() error {
		_, execErr := dispatcher.Execute(cmd.Context(), res, func(path string) {
			created = append(created, path)
		})
		return execErr
	}, output.WithTitle(fmt.Sprintf("Generating %s library %s...", libType, name)))
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf(
		"Created %s library %s (%d files)", libType, output.StyleNoun.Render(name), len(created))))
	output.Println("Location: " + output.StyleNoun.Render(targetDir))

	// Keep the workspace root in the verbose trail for debugging.
	output.Debug("generation complete", "root", root, "target", targetDir, "files", len(created))
	return nil
}
