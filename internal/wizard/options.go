package wizard

// OptionKind discriminates the option config variants.
type OptionKind string

const (
	OptionBoolean OptionKind = "boolean"
	OptionText    OptionKind = "text"
	OptionSelect  OptionKind = "select"
)

// Option keys shared between the catalog and the execution dispatcher.
// The catalog rows below and the dispatcher's per-type argument shaping
// must stay in sync.
const (
	KeyDescription         = "description"
	KeyScope               = "scope"
	KeyPlatform            = "platform"
	KeyIncludeCQRS         = "includeCQRS"
	KeyIncludeClientServer = "includeClientServer"
)

// OptionConfig describes one configurable option and its UI metadata.
// Choices is populated only for select options, Placeholder only for
// text options.
type OptionConfig struct {
	Kind        OptionKind
	Key         string
	Label       string
	Description string
	Choices     []string
	Placeholder string
}

// Catalog maps each library type to its ordered option list. It is
// immutable after construction and injected into the operations bridge.
type Catalog struct {
	byType map[LibraryType][]OptionConfig
}

// NewCatalog builds a catalog from an explicit per-type table.
func NewCatalog(table map[LibraryType][]OptionConfig) Catalog {
	return Catalog{byType: table}
}

// ForType returns the ordered option list for a library type. An unknown
// type yields an empty list; the type system makes that unreachable from
// the wizard itself.
func (c Catalog) ForType(t LibraryType) []OptionConfig {
	return c.byType[t]
}

var (
	optPlatform = OptionConfig{
		Kind:        OptionSelect,
		Key:         KeyPlatform,
		Label:       "Target platform",
		Description: "Runtime the library is built for",
		Choices:     []string{PlatformNode, PlatformBrowser, PlatformUniversal, PlatformEdge},
	}
	optScope = OptionConfig{
		Kind:        OptionText,
		Key:         KeyScope,
		Label:       "Scope",
		Description: "Monorepo scope tag, e.g. orders or billing",
		Placeholder: "scope",
	}
	optCQRS = OptionConfig{
		Kind:        OptionBoolean,
		Key:         KeyIncludeCQRS,
		Label:       "Include CQRS",
		Description: "Generate command/query handler scaffolding",
	}
	optClientServer = OptionConfig{
		Kind:        OptionBoolean,
		Key:         KeyIncludeClientServer,
		Label:       "Include client/server split",
		Description: "Generate separate client and server entry points",
	}
)

// DefaultCatalog returns the standard per-type option table.
func DefaultCatalog() Catalog {
	return NewCatalog(map[LibraryType][]OptionConfig{
		TypeContract:   {optCQRS},
		TypeFeature:    {optPlatform, optScope, optClientServer, optCQRS},
		TypeInfra:      {optPlatform, optClientServer},
		TypeDomain:     {optScope, optClientServer, optCQRS},
		TypeDataAccess: {},
		TypeProvider:   {optPlatform},
	})
}
