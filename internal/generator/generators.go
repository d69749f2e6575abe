package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/samuelho-dev/monorepo-library-generator-sub003/internal/errors"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/templates"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/workspace"
)

// plannedFile pairs a template asset with its output path.
type plannedFile struct {
	asset  string
	target string
}

func buildData(libType string, args Args) templates.Data {
	data := templates.Data{
		Name:         args.Name,
		PascalName:   workspace.PascalCase(args.Name),
		CamelName:    workspace.CamelCase(args.Name),
		ConstantName: workspace.ConstantCase(args.Name),
		Type:         libType,
		Description:  args.Description,
		Tags:         args.Tags,
	}
	if args.Tags != "" {
		data.TagList = splitTags(args.Tags)
	}
	if args.Scope != nil {
		data.Scope = *args.Scope
	}
	if args.Platform != nil {
		data.Platform = *args.Platform
	}
	if args.ExternalService != "" {
		data.ExternalService = args.ExternalService
		data.PascalExternalService = workspace.PascalCase(workspace.KebabCase(args.ExternalService))
	}
	if args.IncludeCQRS != nil {
		data.IncludeCQRS = *args.IncludeCQRS
	}
	if args.IncludeClientServer != nil {
		data.IncludeClientServer = *args.IncludeClientServer
	}
	return data
}

func splitTags(tags string) []string {
	var out []string
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func commonFiles() []plannedFile {
	return []plannedFile{
		{asset: "common/package.json.tmpl", target: "package.json"},
		{asset: "common/project.json.tmpl", target: "project.json"},
		{asset: "common/tsconfig.json.tmpl", target: "tsconfig.json"},
		{asset: "common/README.md.tmpl", target: "README.md"},
		{asset: "common/index.ts.tmpl", target: "src/index.ts"},
	}
}

func clientServerFiles() []plannedFile {
	return []plannedFile{
		{asset: "common/client.ts.tmpl", target: "src/lib/client/index.ts"},
		{asset: "common/server.ts.tmpl", target: "src/lib/server/index.ts"},
	}
}

// emit renders each planned file into the target directory, invoking
// OnFile per written file in order. The target directory must not
// already exist.
func emit(ctx context.Context, libType string, args Args, files []plannedFile) error {
	if _, err := os.Stat(args.TargetDir); err == nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("directory already exists: %s", args.TargetDir),
			args.TargetDir,
			"Choose a different name or remove the existing directory.",
		)
	}

	data := buildData(libType, args)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := templates.Render(f.asset, data)
		if err != nil {
			return err
		}

		dest := filepath.Join(args.TargetDir, filepath.FromSlash(f.target))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.target, err)
		}
		if err := os.WriteFile(dest, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.target, err)
		}

		if args.OnFile != nil {
			args.OnFile(f.target)
		}
	}

	return nil
}

// GenerateContract generates a contract library.
func GenerateContract(ctx context.Context, args Args) error {
	files := append(commonFiles(),
		plannedFile{asset: "contract/types.ts.tmpl", target: fmt.Sprintf("src/lib/%s.types.ts", args.Name)},
		plannedFile{asset: "contract/schema.ts.tmpl", target: fmt.Sprintf("src/lib/%s.schema.ts", args.Name)},
	)
	if args.IncludeCQRS != nil && *args.IncludeCQRS {
		files = append(files,
			plannedFile{asset: "contract/commands.ts.tmpl", target: "src/lib/commands.ts"},
			plannedFile{asset: "contract/queries.ts.tmpl", target: "src/lib/queries.ts"},
		)
	}
	return emit(ctx, "contract", args, files)
}

// GenerateDataAccess generates a data-access library.
func GenerateDataAccess(ctx context.Context, args Args) error {
	files := append(commonFiles(),
		plannedFile{asset: "data-access/repository.ts.tmpl", target: fmt.Sprintf("src/lib/%s.repository.ts", args.Name)},
		plannedFile{asset: "data-access/queries.ts.tmpl", target: fmt.Sprintf("src/lib/%s.queries.ts", args.Name)},
	)
	if args.IncludeCache != nil && *args.IncludeCache {
		files = append(files, plannedFile{asset: "data-access/cache.ts.tmpl", target: fmt.Sprintf("src/lib/%s.cache.ts", args.Name)})
	}
	return emit(ctx, "data-access", args, files)
}

// GenerateFeature generates a feature library.
func GenerateFeature(ctx context.Context, args Args) error {
	files := append(commonFiles(),
		plannedFile{asset: "feature/service.ts.tmpl", target: fmt.Sprintf("src/lib/%s.service.ts", args.Name)},
	)
	if args.IncludeClientServer != nil && *args.IncludeClientServer {
		files = append(files, clientServerFiles()...)
	}
	if args.IncludeCQRS != nil && *args.IncludeCQRS {
		files = append(files, plannedFile{asset: "feature/handlers.ts.tmpl", target: "src/lib/cqrs/handlers.ts"})
	}
	return emit(ctx, "feature", args, files)
}

// GenerateInfra generates an infra library.
func GenerateInfra(ctx context.Context, args Args) error {
	files := append(commonFiles(),
		plannedFile{asset: "infra/adapter.ts.tmpl", target: fmt.Sprintf("src/lib/%s.adapter.ts", args.Name)},
	)
	if args.IncludeClientServer != nil && *args.IncludeClientServer {
		files = append(files, clientServerFiles()...)
	}
	return emit(ctx, "infra", args, files)
}

// GenerateProvider generates a provider library wrapping an external
// service.
func GenerateProvider(ctx context.Context, args Args) error {
	files := append(commonFiles(),
		plannedFile{asset: "provider/provider.ts.tmpl", target: fmt.Sprintf("src/lib/%s.provider.ts", args.Name)},
		plannedFile{asset: "provider/client.ts.tmpl", target: fmt.Sprintf("src/lib/%s.client.ts", args.Name)},
	)
	return emit(ctx, "provider", args, files)
}

// GenerateDomain generates the composite domain library: aggregate,
// events, and repository interface, plus CQRS scaffolding when enabled.
func GenerateDomain(ctx context.Context, args Args) error {
	files := append(commonFiles(),
		plannedFile{asset: "domain/aggregate.ts.tmpl", target: fmt.Sprintf("src/lib/%s.aggregate.ts", args.Name)},
		plannedFile{asset: "domain/events.ts.tmpl", target: fmt.Sprintf("src/lib/%s.events.ts", args.Name)},
		plannedFile{asset: "domain/repository.ts.tmpl", target: fmt.Sprintf("src/lib/%s.repository.ts", args.Name)},
	)
	if args.IncludeCQRS != nil && *args.IncludeCQRS {
		files = append(files,
			plannedFile{asset: "domain/commands.ts.tmpl", target: "src/lib/cqrs/commands.ts"},
			plannedFile{asset: "domain/queries.ts.tmpl", target: "src/lib/cqrs/queries.ts"},
		)
	}
	return emit(ctx, "domain", args, files)
}

// ScaffoldWorkspace writes the workspace-level files for the init
// action. Unlike library generation, it tolerates an existing root
// directory but refuses to overwrite existing files.
func ScaffoldWorkspace(ctx context.Context, root string, onFile func(path string)) error {
	files := []plannedFile{
		{asset: "workspace/pnpm-workspace.yaml.tmpl", target: "pnpm-workspace.yaml"},
		{asset: "workspace/nx.json.tmpl", target: "nx.json"},
		{asset: "workspace/tsconfig.base.json.tmpl", target: "tsconfig.base.json"},
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		dest := filepath.Join(root, f.target)
		if _, err := os.Stat(dest); err == nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("file already exists: %s", dest),
				dest,
				"The workspace appears to be initialized already.",
			)
		}

		content, err := templates.Render(f.asset, templates.Data{})
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.target, err)
		}
		if err := os.WriteFile(dest, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.target, err)
		}
		if onFile != nil {
			onFile(f.target)
		}
	}

	libsDir := filepath.Join(root, "libs")
	if err := os.MkdirAll(libsDir, 0o755); err != nil {
		return fmt.Errorf("creating libraries root: %w", err)
	}
	gitkeep := filepath.Join(libsDir, ".gitkeep")
	if _, err := os.Stat(gitkeep); os.IsNotExist(err) {
		if err := os.WriteFile(gitkeep, nil, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", gitkeep, err)
		}
		if onFile != nil {
			onFile("libs/.gitkeep")
		}
	}

	return nil
}
