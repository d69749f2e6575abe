package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/samuelho-dev/monorepo-library-generator-sub003/internal/errors"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/testutil"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestGenerateCreatesLibrary(t *testing.T) {
	libs := filepath.Join(t.TempDir(), "libs")

	err := execute(t, "generate", "contract", "user-api", "--root", libs, "--yes")
	require.NoError(t, err)

	target := filepath.Join(libs, "contract", "user-api")
	for _, f := range []string{"package.json", "project.json", "tsconfig.json", "src/index.ts"} {
		assert.FileExists(t, filepath.Join(target, f))
	}
}

func TestGenerateWithCQRS(t *testing.T) {
	libs := filepath.Join(t.TempDir(), "libs")

	err := execute(t, "generate", "contract", "user-api", "--root", libs, "--cqrs", "--yes")
	require.NoError(t, err)

	target := filepath.Join(libs, "contract", "user-api")
	assert.FileExists(t, filepath.Join(target, "src/lib/commands.ts"))
	assert.FileExists(t, filepath.Join(target, "src/lib/queries.ts"))
}

func TestGenerateHonorsDirFlag(t *testing.T) {
	tmp := t.TempDir()
	libs := filepath.Join(tmp, "libs")
	custom := filepath.Join(tmp, "elsewhere")

	err := execute(t, "generate", "feature", "checkout", "--root", libs, "--dir", custom, "--yes")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(custom, "package.json"))
	assert.NoDirExists(t, filepath.Join(libs, "feature", "checkout"))
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	libs := filepath.Join(t.TempDir(), "libs")

	err := execute(t, "generate", "widget", "user-api", "--root", libs)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestGenerateRejectsInvalidName(t *testing.T) {
	libs := filepath.Join(t.TempDir(), "libs")

	err := execute(t, "generate", "contract", "User API", "--root", libs)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestGenerateRefusesExistingDirectory(t *testing.T) {
	libs := filepath.Join(t.TempDir(), "libs")
	target := filepath.Join(libs, "contract", "user-api")
	require.NoError(t, os.MkdirAll(target, 0o755))

	err := execute(t, "generate", "contract", "user-api", "--root", libs, "--yes")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestGenerateProviderUsesExternalService(t *testing.T) {
	libs := filepath.Join(t.TempDir(), "libs")

	err := execute(t, "generate", "provider", "payments", "--root", libs, "--external-service", "stripe", "--yes")
	require.NoError(t, err)

	target := filepath.Join(libs, "provider", "payments")
	data, err := os.ReadFile(filepath.Join(target, "src/lib/payments.client.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "stripe")
}

func TestInitScaffoldsWorkspace(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "init", "--dir", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "pnpm-workspace.yaml"))
	assert.FileExists(t, filepath.Join(dir, "nx.json"))
	assert.FileExists(t, filepath.Join(dir, "tsconfig.base.json"))
	assert.FileExists(t, filepath.Join(dir, "libs", ".gitkeep"))
}

func TestInitRefusesExistingWorkspace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "init", "--dir", dir))

	err := execute(t, "init", "--dir", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestGenerateDetectsWorkspaceFromCwd(t *testing.T) {
	root := testutil.ScaffoldWorkspace(t)
	testutil.WriteProject(t, root, "contract", "orders", "type:contract")
	t.Chdir(root)

	err := execute(t, "generate", "contract", "user-api", "--yes")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "libs", "contract", "user-api", "package.json"))
}
