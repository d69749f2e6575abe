package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard"
)

// captureRegistry records the args each generator was invoked with.
func captureRegistry(captured *Args) Registry {
	capture := func(_ context.Context, args Args) error {
		*captured = args
		return nil
	}
	reg := Registry{}
	for _, t := range wizard.LibraryTypes() {
		reg[t] = capture
	}
	return reg
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestExecuteShapesProviderArgs(t *testing.T) {
	var got Args
	d := NewDispatcher(captureRegistry(&got))

	res := wizard.Result{
		LibraryType:     wizard.TypeProvider,
		LibraryName:     "stripe",
		TargetDirectory: "/ws/libs/provider/stripe",
		Options:         wizard.Options{Platform: strPtr("node")},
	}

	out, err := d.Execute(context.Background(), res, nil)

	require.NoError(t, err)
	assert.Equal(t, res, out)
	// External service falls back to the library name when unset.
	assert.Equal(t, "stripe", got.ExternalService)
	require.NotNil(t, got.Platform)
	assert.Equal(t, "node", *got.Platform)
}

func TestExecuteShapesContractArgs(t *testing.T) {
	var got Args
	d := NewDispatcher(captureRegistry(&got))

	res := wizard.Result{
		LibraryType: wizard.TypeContract,
		LibraryName: "orders",
		Options:     wizard.Options{Description: "order contracts", Tags: "type:contract"},
	}

	_, err := d.Execute(context.Background(), res, nil)

	require.NoError(t, err)
	assert.Equal(t, "orders", got.Name)
	assert.Equal(t, "order contracts", got.Description)
	assert.Equal(t, "type:contract", got.Tags)
	// CQRS defaults to an explicit false, never nil.
	require.NotNil(t, got.IncludeCQRS)
	assert.False(t, *got.IncludeCQRS)
}

func TestExecuteShapesDataAccessArgs(t *testing.T) {
	var got Args
	d := NewDispatcher(captureRegistry(&got))

	on := true
	res := wizard.Result{
		LibraryType: wizard.TypeDataAccess,
		LibraryName: "orders",
		Options:     wizard.Options{IncludeCQRS: &on, Platform: strPtr("edge"), IncludeCache: &on},
	}

	_, err := d.Execute(context.Background(), res, nil)

	require.NoError(t, err)
	// Foreign type options are not forwarded; the cache layer is.
	assert.Nil(t, got.IncludeCQRS)
	assert.Nil(t, got.Platform)
	require.NotNil(t, got.IncludeCache)
	assert.True(t, *got.IncludeCache)
}

func TestExecuteShapesFeatureArgs(t *testing.T) {
	var got Args
	d := NewDispatcher(captureRegistry(&got))

	res := wizard.Result{
		LibraryType: wizard.TypeFeature,
		LibraryName: "checkout",
		Options: wizard.Options{
			Scope:               strPtr("orders"),
			Platform:            strPtr("universal"),
			IncludeClientServer: boolPtr(true),
		},
	}

	_, err := d.Execute(context.Background(), res, nil)

	require.NoError(t, err)
	assert.Equal(t, "orders", *got.Scope)
	assert.Equal(t, "universal", *got.Platform)
	assert.True(t, *got.IncludeClientServer)
	// Pass-through: unset stays unset.
	assert.Nil(t, got.IncludeCQRS)
}

func TestExecuteShapesDomainArgs(t *testing.T) {
	var got Args
	d := NewDispatcher(captureRegistry(&got))

	t.Run("unset options stay unset", func(t *testing.T) {
		res := wizard.Result{LibraryType: wizard.TypeDomain, LibraryName: "billing"}
		_, err := d.Execute(context.Background(), res, nil)
		require.NoError(t, err)
		assert.Nil(t, got.Scope)
		assert.Nil(t, got.IncludeClientServer)
		assert.Nil(t, got.IncludeCQRS)
	})

	t.Run("explicit false is forwarded", func(t *testing.T) {
		res := wizard.Result{
			LibraryType: wizard.TypeDomain,
			LibraryName: "billing",
			Options:     wizard.Options{IncludeCQRS: boolPtr(false)},
		}
		_, err := d.Execute(context.Background(), res, nil)
		require.NoError(t, err)
		require.NotNil(t, got.IncludeCQRS)
		assert.False(t, *got.IncludeCQRS)
	})
}

func TestExecuteResolveFailure(t *testing.T) {
	d := NewDispatcher(Registry{})

	_, err := d.Execute(context.Background(), wizard.Result{LibraryType: wizard.TypeInfra}, nil)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "resolve", genErr.Op)
	assert.Equal(t, wizard.TypeInfra, genErr.Type)
}

func TestExecuteWrapsGeneratorFailure(t *testing.T) {
	cause := errors.New("disk full")
	reg := Registry{
		wizard.TypeContract: func(context.Context, Args) error { return cause },
	}
	d := NewDispatcher(reg)

	res := wizard.Result{
		LibraryType:     wizard.TypeContract,
		LibraryName:     "orders",
		TargetDirectory: t.TempDir() + "/orders",
	}

	_, err := d.Execute(context.Background(), res, nil)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "generate", genErr.Op)
	assert.ErrorIs(t, err, cause)
}

func TestExecutePreservesPreexistingTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "orders")
	require.NoError(t, os.MkdirAll(target, 0o755))
	marker := filepath.Join(target, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0o644))

	reg := Registry{
		wizard.TypeContract: func(context.Context, Args) error {
			return errors.New("refused")
		},
	}

	_, err := NewDispatcher(reg).Execute(context.Background(), wizard.Result{
		LibraryType:     wizard.TypeContract,
		LibraryName:     "orders",
		TargetDirectory: target,
	}, nil)

	require.Error(t, err)
	assert.FileExists(t, marker)
}
