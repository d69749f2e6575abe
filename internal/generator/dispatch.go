package generator

import (
	"context"
	"os"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/output"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard"
)

// Dispatcher resolves the generator for a wizard result's library type,
// normalizes the option bag into generator arguments, and executes the
// generator. It implements wizard.Generator and wizard.Initializer.
type Dispatcher struct {
	registry Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Execute generates the library described by the result. On success the
// input result is returned unchanged; the caller uses it to report
// completion. A partially written target directory is removed on
// failure. The dispatcher never retries.
func (d *Dispatcher) Execute(ctx context.Context, res wizard.Result, onFile func(path string)) (wizard.Result, error) {
	fn, err := d.registry.Resolve(res.LibraryType)
	if err != nil {
		return res, err
	}

	args := shapeArgs(res)
	args.OnFile = onFile

	// Only clean up a directory this run created; a pre-existing target
	// (the generator refuses to overwrite it) must survive the failure.
	_, statErr := os.Stat(res.TargetDirectory)
	existedBefore := statErr == nil

	output.Debug("dispatching generator",
		"type", res.LibraryType,
		"name", res.LibraryName,
		"target", res.TargetDirectory,
	)

	if err := fn(ctx, args); err != nil {
		if !existedBefore {
			if rmErr := os.RemoveAll(res.TargetDirectory); rmErr != nil {
				output.Warn("cleaning up failed generation", "dir", res.TargetDirectory, "error", rmErr)
			}
		}
		return res, &GenerationError{Type: res.LibraryType, Op: "generate", Cause: err}
	}

	return res, nil
}

// shapeArgs builds the per-type argument bundle. The common base is
// name, description, and tags (empty string when unset); each type then
// adds exactly the fields its generator understands.
func shapeArgs(res wizard.Result) Args {
	opts := res.Options
	base := Args{
		Name:        res.LibraryName,
		Description: opts.Description,
		Tags:        opts.TagString(),
		TargetDir:   res.TargetDirectory,
	}

	switch res.LibraryType {
	case wizard.TypeContract:
		// CQRS defaults off for contracts.
		base.IncludeCQRS = boolPtrOrFalse(opts.IncludeCQRS)

	case wizard.TypeDataAccess:
		// The cache layer has no catalog entry; it reaches here only
		// through the scripted and programmatic surfaces.
		base.IncludeCache = opts.IncludeCache

	case wizard.TypeFeature:
		base.Scope = opts.Scope
		base.Platform = opts.Platform
		base.IncludeClientServer = opts.IncludeClientServer
		base.IncludeCQRS = opts.IncludeCQRS

	case wizard.TypeInfra:
		base.Platform = opts.Platform
		base.IncludeClientServer = opts.IncludeClientServer

	case wizard.TypeProvider:
		base.ExternalService = res.ExternalService
		if base.ExternalService == "" {
			base.ExternalService = res.LibraryName
		}
		base.Platform = opts.Platform

	case wizard.TypeDomain:
		// Only forward options the user explicitly set, so the domain
		// generator's own defaults are not overridden.
		if opts.Scope != nil {
			base.Scope = opts.Scope
		}
		if opts.IncludeClientServer != nil {
			base.IncludeClientServer = opts.IncludeClientServer
		}
		if opts.IncludeCQRS != nil {
			base.IncludeCQRS = opts.IncludeCQRS
		}
	}

	return base
}

func boolPtrOrFalse(b *bool) *bool {
	if b != nil {
		return b
	}
	f := false
	return &f
}

// InitWorkspace scaffolds the workspace root for the init action.
func (d *Dispatcher) InitWorkspace(ctx context.Context, root string, onFile func(path string)) error {
	return ScaffoldWorkspace(ctx, root, onFile)
}
