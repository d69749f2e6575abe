package generator

import (
	"errors"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard"
)

// Registry maps each library type to its generator. It is resolved
// eagerly at startup, so a missing entry is a wiring bug surfaced on
// first dispatch rather than a lazy-load failure mid-session.
type Registry map[wizard.LibraryType]GeneratorFunc

// DefaultRegistry returns the standard registry covering all six
// library types.
func DefaultRegistry() Registry {
	return Registry{
		wizard.TypeContract:   GenerateContract,
		wizard.TypeDataAccess: GenerateDataAccess,
		wizard.TypeFeature:    GenerateFeature,
		wizard.TypeInfra:      GenerateInfra,
		wizard.TypeProvider:   GenerateProvider,
		wizard.TypeDomain:     GenerateDomain,
	}
}

// Resolve returns the generator for a library type, or a resolution
// GenerationError when none is registered.
func (r Registry) Resolve(t wizard.LibraryType) (GeneratorFunc, error) {
	fn, ok := r[t]
	if !ok {
		return nil, &GenerationError{
			Type:  t,
			Op:    "resolve",
			Cause: errors.New("no generator registered"),
		}
	}
	return fn, nil
}
