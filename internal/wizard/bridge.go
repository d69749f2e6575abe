package wizard

import "context"

// Validator checks user-entered names before they reach the reducer.
type Validator interface {
	ValidateName(input string) ValidationResult
	ValidateExternalService(input string) ValidationResult
}

// Previewer resolves the files a generation run would produce.
type Previewer interface {
	FilePlan(t LibraryType, name string, opts Options) []FilePreview
	InitFilePlan() []FilePreview
	TargetDirectory(root string, t LibraryType, name string) string
	CreationDescription(t LibraryType, name string) string
}

// OptionSource supplies the per-type option catalog.
type OptionSource interface {
	ForType(t LibraryType) []OptionConfig
}

// Generator executes a completed wizard result. onFile is invoked once
// per emitted file, in emission order; it may be nil.
type Generator interface {
	Execute(ctx context.Context, res Result, onFile func(path string)) (Result, error)
}

// Initializer scaffolds the workspace for the init special action.
type Initializer interface {
	InitWorkspace(ctx context.Context, root string, onFile func(path string)) error
}

// TagSource lists the tags already declared in the workspace, used to
// populate the tag multi-select. Implementations absorb scan failures
// and return an empty list instead.
type TagSource interface {
	ScanTags(ctx context.Context) []string
}

// Ops is the operations bridge: one dependency-injected bundle of the
// business capabilities the presentation layer needs. Presentation code
// depends only on this struct, so tests can substitute fakes for any
// capability.
type Ops struct {
	Validation Validator
	Preview    Previewer
	Catalog    OptionSource
	Generation Generator
	Init       Initializer
	Tags       TagSource
}

// funcPreviewer adapts the package-level pure functions to Previewer.
type funcPreviewer struct{}

func (funcPreviewer) FilePlan(t LibraryType, name string, opts Options) []FilePreview {
	return FilePlan(t, name, opts)
}
func (funcPreviewer) InitFilePlan() []FilePreview { return InitFilePlan() }
func (funcPreviewer) TargetDirectory(root string, t LibraryType, name string) string {
	return TargetDirectory(root, t, name)
}
func (funcPreviewer) CreationDescription(t LibraryType, name string) string {
	return CreationDescription(t, name)
}

// NewOps assembles an operations bridge from the default validation,
// preview, and catalog implementations plus the supplied collaborators.
func NewOps(gen Generator, init Initializer, tags TagSource) *Ops {
	return &Ops{
		Validation: DefaultRules(),
		Preview:    funcPreviewer{},
		Catalog:    DefaultCatalog(),
		Generation: gen,
		Init:       init,
		Tags:       tags,
	}
}
