// Package generator maps completed wizard results onto the per-type
// library generators and executes them.
package generator

import (
	"context"
	"fmt"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard"
)

// Args is the normalized argument bundle passed to a generator. Pointer
// fields distinguish "never set" from an explicit zero value; generators
// treat nil as "use the generator default".
type Args struct {
	Name        string
	Description string
	Tags        string

	// TargetDir is the directory the library is generated into.
	TargetDir string

	// ExternalService names the wrapped service for provider libraries.
	ExternalService string

	Scope    *string
	Platform *string

	IncludeCQRS         *bool
	IncludeClientServer *bool
	IncludeCache        *bool

	// OnFile is invoked once per written file, in write order. May be nil.
	OnFile func(path string)
}

// GeneratorFunc generates one library type into Args.TargetDir.
type GeneratorFunc func(ctx context.Context, args Args) error

// GenerationError wraps a generator resolution or execution failure.
type GenerationError struct {
	// Type is the library type being generated.
	Type wizard.LibraryType

	// Op is "resolve" when the generator could not be found, "generate"
	// when it ran and failed.
	Op string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s %s library: %v", e.Op, e.Type, e.Cause)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}
