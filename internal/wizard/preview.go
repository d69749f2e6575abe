package wizard

import (
	"fmt"
	"path"
)

// FilePreview describes one file the generator would create. It is a
// derived projection: never mutated, always recomputed from the current
// type, name, and options.
type FilePreview struct {
	Path        string
	Description string
	Optional    bool
}

// FileCount aggregates a file plan.
type FileCount struct {
	Total    int
	Required int
	Optional int
}

// CountFiles tallies a file plan by requiredness.
func CountFiles(files []FilePreview) FileCount {
	c := FileCount{Total: len(files)}
	for _, f := range files {
		if f.Optional {
			c.Optional++
		} else {
			c.Required++
		}
	}
	return c
}

// TargetDirectory returns the directory the library would be generated
// into. Pure path join; it does not touch the filesystem.
func TargetDirectory(root string, t LibraryType, name string) string {
	return path.Join(root, string(t), name)
}

// CreationDescription returns a human-readable blurb for the confirm
// screen describing what generation will produce.
func CreationDescription(t LibraryType, name string) string {
	switch t {
	case TypeDomain:
		return fmt.Sprintf("Create domain library %q with contract, data-access, and domain layers", name)
	case TypeProvider:
		return fmt.Sprintf("Create provider library %q wrapping an external service", name)
	default:
		return fmt.Sprintf("Create %s library %q", t, name)
	}
}

func baseFiles(name string) []FilePreview {
	return []FilePreview{
		{Path: "package.json", Description: "Package manifest"},
		{Path: "project.json", Description: "Project configuration"},
		{Path: "tsconfig.json", Description: "TypeScript configuration"},
		{Path: "README.md", Description: "Library documentation", Optional: true},
		{Path: "src/index.ts", Description: "Public API entry point"},
	}
}

// FilePlan deterministically computes the files that would be created
// for a library, without touching disk. It does not check whether any of
// them already exist.
func FilePlan(t LibraryType, name string, opts Options) []FilePreview {
	files := baseFiles(name)

	switch t {
	case TypeContract:
		files = append(files,
			FilePreview{Path: fmt.Sprintf("src/lib/%s.types.ts", name), Description: "Type definitions"},
			FilePreview{Path: fmt.Sprintf("src/lib/%s.schema.ts", name), Description: "Validation schemas"},
		)
		if opts.IncludeCQRS != nil && *opts.IncludeCQRS {
			files = append(files,
				FilePreview{Path: "src/lib/commands.ts", Description: "Command definitions"},
				FilePreview{Path: "src/lib/queries.ts", Description: "Query definitions"},
			)
		}

	case TypeDataAccess:
		files = append(files,
			FilePreview{Path: fmt.Sprintf("src/lib/%s.repository.ts", name), Description: "Repository implementation"},
			FilePreview{Path: fmt.Sprintf("src/lib/%s.queries.ts", name), Description: "Query builders"},
		)
		if opts.IncludeCache != nil && *opts.IncludeCache {
			files = append(files,
				FilePreview{Path: fmt.Sprintf("src/lib/%s.cache.ts", name), Description: "Cache layer", Optional: true},
			)
		}

	case TypeFeature:
		files = append(files,
			FilePreview{Path: fmt.Sprintf("src/lib/%s.service.ts", name), Description: "Feature service"},
		)
		if opts.IncludeClientServer != nil && *opts.IncludeClientServer {
			files = append(files,
				FilePreview{Path: "src/lib/client/index.ts", Description: "Client entry point"},
				FilePreview{Path: "src/lib/server/index.ts", Description: "Server entry point"},
			)
		}
		if opts.IncludeCQRS != nil && *opts.IncludeCQRS {
			files = append(files,
				FilePreview{Path: "src/lib/cqrs/handlers.ts", Description: "Command/query handlers"},
			)
		}

	case TypeInfra:
		files = append(files,
			FilePreview{Path: fmt.Sprintf("src/lib/%s.adapter.ts", name), Description: "Infrastructure adapter"},
		)
		if opts.IncludeClientServer != nil && *opts.IncludeClientServer {
			files = append(files,
				FilePreview{Path: "src/lib/client/index.ts", Description: "Client entry point"},
				FilePreview{Path: "src/lib/server/index.ts", Description: "Server entry point"},
			)
		}

	case TypeProvider:
		files = append(files,
			FilePreview{Path: fmt.Sprintf("src/lib/%s.provider.ts", name), Description: "Provider implementation"},
			FilePreview{Path: fmt.Sprintf("src/lib/%s.client.ts", name), Description: "External service client"},
		)

	case TypeDomain:
		files = append(files,
			FilePreview{Path: fmt.Sprintf("src/lib/%s.aggregate.ts", name), Description: "Domain aggregate"},
			FilePreview{Path: fmt.Sprintf("src/lib/%s.events.ts", name), Description: "Domain events"},
			FilePreview{Path: fmt.Sprintf("src/lib/%s.repository.ts", name), Description: "Repository interface"},
		)
		if opts.IncludeCQRS != nil && *opts.IncludeCQRS {
			files = append(files,
				FilePreview{Path: "src/lib/cqrs/commands.ts", Description: "Command definitions"},
				FilePreview{Path: "src/lib/cqrs/queries.ts", Description: "Query definitions"},
			)
		}
	}

	return files
}

// InitFilePlan computes the files the init action would create at the
// workspace root.
func InitFilePlan() []FilePreview {
	return []FilePreview{
		{Path: "pnpm-workspace.yaml", Description: "Workspace package globs"},
		{Path: "nx.json", Description: "Workspace tooling configuration"},
		{Path: "tsconfig.base.json", Description: "Shared TypeScript configuration"},
		{Path: "libs/.gitkeep", Description: "Libraries root", Optional: true},
	}
}
