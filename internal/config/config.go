// Package config provides configuration loading and management.
package config

// Config holds user-level libgen settings.
type Config struct {
	// LibrariesRoot is the directory libraries are generated into.
	// Env: LIBGEN_LIBRARIES_ROOT, Default: <workspace>/libs
	LibrariesRoot string `mapstructure:"librariesRoot"`

	// DefaultPlatform is the platform preselected in the wizard.
	// Env: LIBGEN_DEFAULT_PLATFORM, Default: "node"
	DefaultPlatform string `mapstructure:"defaultPlatform"`

	// DefaultScope is the scope tag preselected in the wizard.
	// Env: LIBGEN_DEFAULT_SCOPE
	DefaultScope string `mapstructure:"defaultScope"`
}

// WithDefaults returns a copy of the config with defaults applied to
// unset fields.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.DefaultPlatform == "" {
		out.DefaultPlatform = "node"
	}
	return &out
}
