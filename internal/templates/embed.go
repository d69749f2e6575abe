package templates

import "embed"

// FS holds all template assets, one directory per library type plus
// common files shared by every type and the workspace scaffold.
//
//go:embed assets
var FS embed.FS
