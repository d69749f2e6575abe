package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
librariesRoot: /ws/libs
defaultPlatform: edge
defaultScope: billing
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/ws/libs", cfg.LibrariesRoot)
		assert.Equal(t, "edge", cfg.DefaultPlatform)
		assert.Equal(t, "billing", cfg.DefaultScope)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.LibrariesRoot)
	})

	t.Run("environment variables take precedence", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("defaultPlatform: browser\n"), 0o644))

		t.Setenv("LIBGEN_DEFAULT_PLATFORM", "universal")
		t.Setenv("LIBGEN_LIBRARIES_ROOT", "/env/libs")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "universal", cfg.DefaultPlatform)
		assert.Equal(t, "/env/libs", cfg.LibrariesRoot)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := NewLoader().LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, "node", cfg.DefaultPlatform)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("tilde alone", func(t *testing.T) {
		got, err := ExpandPath("~")
		require.NoError(t, err)
		assert.Equal(t, home, got)
	})

	t.Run("tilde prefix", func(t *testing.T) {
		got, err := ExpandPath("~/x/y")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "x", "y"), got)
	})

	t.Run("absolute path unchanged", func(t *testing.T) {
		got, err := ExpandPath("/etc/libgen.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/etc/libgen.yaml", got)
	})
}
