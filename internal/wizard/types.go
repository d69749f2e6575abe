// Package wizard implements the interactive library-generation wizard:
// its step flow, state machine, validation rules, option catalog, and
// the file-preview resolver. All of it is pure — terminal rendering and
// file I/O live in the presentation and generator layers.
package wizard

import "strings"

// Selection is the user's initial choice at the select-type step: either
// one of the five single library types, or a special action.
type Selection string

const (
	SelectContract   Selection = "contract"
	SelectDataAccess Selection = "data-access"
	SelectFeature    Selection = "feature"
	SelectInfra      Selection = "infra"
	SelectProvider   Selection = "provider"

	// SelectDomain generates a composite domain library (contract +
	// data-access + domain layers in one pass).
	SelectDomain Selection = "domain"

	// SelectInit scaffolds the workspace itself. It has no library type
	// and skips name/option collection entirely.
	SelectInit Selection = "init"
)

// Selections lists all selections in the order they are presented.
func Selections() []Selection {
	return []Selection{
		SelectContract,
		SelectDataAccess,
		SelectFeature,
		SelectInfra,
		SelectProvider,
		SelectDomain,
		SelectInit,
	}
}

// LibraryType is a selection narrowed to a concrete generation target.
type LibraryType string

const (
	TypeContract   LibraryType = "contract"
	TypeDataAccess LibraryType = "data-access"
	TypeFeature    LibraryType = "feature"
	TypeInfra      LibraryType = "infra"
	TypeProvider   LibraryType = "provider"
	TypeDomain     LibraryType = "domain"
)

// LibraryTypes lists all concrete generation targets.
func LibraryTypes() []LibraryType {
	return []LibraryType{
		TypeContract,
		TypeDataAccess,
		TypeFeature,
		TypeInfra,
		TypeProvider,
		TypeDomain,
	}
}

// LibraryType returns the generation target for a selection.
// The second return is false for SelectInit, which has no target.
func (s Selection) LibraryType() (LibraryType, bool) {
	if s == SelectInit {
		return "", false
	}
	return LibraryType(s), true
}

// Title returns the human-readable label for a selection.
func (s Selection) Title() string {
	switch s {
	case SelectContract:
		return "Contract — types, schemas, and API definitions"
	case SelectDataAccess:
		return "Data access — repositories and queries"
	case SelectFeature:
		return "Feature — business logic and services"
	case SelectInfra:
		return "Infra — adapters and platform glue"
	case SelectProvider:
		return "Provider — external service integration"
	case SelectDomain:
		return "Domain — composite contract + data-access + domain"
	case SelectInit:
		return "Init — scaffold the workspace libraries root"
	default:
		return string(s)
	}
}

// Platform values accepted by the platform select option.
const (
	PlatformNode      = "node"
	PlatformBrowser   = "browser"
	PlatformUniversal = "universal"
	PlatformEdge      = "edge"
)

// Options is the per-session option bag edited on the configure-options
// step. Which keys apply depends on the library type (see Catalog).
// Scope, Platform, and the boolean options are pointers so the dispatcher
// can distinguish "never set" from an explicit false or empty value.
type Options struct {
	Description string

	// Tags is the legacy comma-separated tag string. SelectedTags is
	// preferred when non-empty; see EffectiveTags.
	Tags         string
	SelectedTags []string

	Scope    *string
	Platform *string

	IncludeCQRS         *bool
	IncludeClientServer *bool
	IncludeCache        *bool
}

// EffectiveTags returns the tags to apply to the generated library,
// preferring the multi-select over the legacy comma string.
func (o Options) EffectiveTags() []string {
	if len(o.SelectedTags) > 0 {
		return append([]string(nil), o.SelectedTags...)
	}
	if o.Tags == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(o.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// TagString returns the effective tags as a comma-separated string.
func (o Options) TagString() string {
	return strings.Join(o.EffectiveTags(), ",")
}

// clone returns a copy of the options with no shared slice storage.
func (o Options) clone() Options {
	out := o
	if o.SelectedTags != nil {
		out.SelectedTags = append([]string(nil), o.SelectedTags...)
	}
	return out
}

// Result is the finalized, immutable snapshot of the user's choices,
// produced when the confirm step is accepted. It is the sole input to
// the execution dispatcher.
type Result struct {
	LibraryType     LibraryType
	LibraryName     string
	ExternalService string
	TargetDirectory string
	Options         Options
	FilesToCreate   []FilePreview
}
