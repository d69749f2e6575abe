// Package templates provides the embedded source-file templates the
// generators render into a target directory.
package templates

// Data holds the values substituted into template files.
type Data struct {
	// Name is the kebab-case library name.
	Name string

	// PascalName, CamelName, and ConstantName are casing variants of
	// Name used inside generated source.
	PascalName   string
	CamelName    string
	ConstantName string

	// Type is the library type (contract, feature, ...).
	Type string

	// Description is the free-text library description.
	Description string

	// Tags is the comma-separated tag list for project metadata;
	// TagList is the same list pre-split for JSON emission.
	Tags    string
	TagList []string

	// Scope and Platform are optional option values; empty when unset.
	Scope    string
	Platform string

	// ExternalService names the wrapped service for provider libraries.
	ExternalService       string
	PascalExternalService string

	IncludeCQRS         bool
	IncludeClientServer bool
}
