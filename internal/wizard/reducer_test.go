package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceSetSelection(t *testing.T) {
	t.Run("derives library type from selection", func(t *testing.T) {
		s := Reduce(NewState("/ws/libs"), SetSelection{Selection: SelectDataAccess})
		assert.Equal(t, SelectDataAccess, s.Selection)
		assert.Equal(t, TypeDataAccess, s.LibraryType)
	})

	t.Run("init has no library type", func(t *testing.T) {
		s := Reduce(NewState("/ws/libs"), SetSelection{Selection: SelectInit})
		assert.Equal(t, SelectInit, s.Selection)
		assert.Empty(t, s.LibraryType)
	})

	t.Run("changing selection clears a stale library type", func(t *testing.T) {
		s := Reduce(NewState("/ws/libs"), SetSelection{Selection: SelectFeature})
		s = Reduce(s, SetSelection{Selection: SelectInit})
		assert.Empty(t, s.LibraryType)
	})

	t.Run("leaving provider clears a stale external service", func(t *testing.T) {
		s := Reduce(NewState("/ws/libs"), SetSelection{Selection: SelectProvider})
		s = Reduce(s, SetExternalService{Service: "stripe"})
		s = Reduce(s, SetSelection{Selection: SelectContract})

		assert.Empty(t, s.ExternalService)
		assert.Empty(t, s.Result().ExternalService)
	})

	t.Run("re-selecting provider keeps the entered service", func(t *testing.T) {
		s := Reduce(NewState("/ws/libs"), SetSelection{Selection: SelectProvider})
		s = Reduce(s, SetExternalService{Service: "stripe"})
		s = Reduce(s, SetSelection{Selection: SelectProvider})

		assert.Equal(t, "stripe", s.ExternalService)
	})
}

func TestReduceFieldAssignments(t *testing.T) {
	s := NewState("/ws/libs")

	s = Reduce(s, SetLibraryName{Name: "orders"})
	assert.Equal(t, "orders", s.LibraryName)

	s = Reduce(s, SetExternalService{Service: "stripe"})
	assert.Equal(t, "stripe", s.ExternalService)

	files := []FilePreview{{Path: "src/index.ts", Description: "entry"}}
	s = Reduce(s, SetFilesToCreate{Files: files})
	require.Len(t, s.FilesToCreate, 1)

	// Mutating the caller's slice must not leak into state.
	files[0].Path = "mutated"
	assert.Equal(t, "src/index.ts", s.FilesToCreate[0].Path)
}

func TestReduceSetOptionsIsNoOpForSameValue(t *testing.T) {
	cqrs := true
	base := NewState("/ws/libs")
	base.LibraryName = "orders"
	base.Options = Options{Description: "order contracts", IncludeCQRS: &cqrs}

	next := Reduce(base, SetOptions{Options: base.Options})

	assert.Equal(t, base.CurrentStep, next.CurrentStep)
	assert.Equal(t, base.LibraryName, next.LibraryName)
	assert.Equal(t, base.Options.Description, next.Options.Description)
	assert.Equal(t, base.Options.IncludeCQRS, next.Options.IncludeCQRS)
	assert.Equal(t, base.LibrariesRoot, next.LibrariesRoot)
}

func TestReduceSetOptionsCopiesSelectedTags(t *testing.T) {
	tags := []string{"scope:orders"}
	s := Reduce(NewState("/ws/libs"), SetOptions{Options: Options{SelectedTags: tags}})

	tags[0] = "mutated"
	assert.Equal(t, "scope:orders", s.Options.SelectedTags[0])
}

func TestReduceStartGeneration(t *testing.T) {
	s := NewState("/ws/libs")
	s.CurrentStep = StepConfirm
	s.GeneratedFiles = []string{"stale"}
	s.Error = "stale"

	s = Reduce(s, StartGeneration{})

	assert.Equal(t, StepGenerating, s.CurrentStep)
	assert.Equal(t, GenerationRunning, s.GenerationStatus)
	assert.Empty(t, s.GeneratedFiles)
	assert.Empty(t, s.Error)
}

func TestReduceAddGeneratedFilePreservesOrder(t *testing.T) {
	s := NewState("/ws/libs")
	for _, p := range []string{"a.ts", "b.ts", "c.ts"} {
		s = Reduce(s, AddGeneratedFile{Path: p})
	}
	assert.Equal(t, []string{"a.ts", "b.ts", "c.ts"}, s.GeneratedFiles)

	// Append semantics: duplicates are kept.
	s = Reduce(s, AddGeneratedFile{Path: "a.ts"})
	assert.Equal(t, []string{"a.ts", "b.ts", "c.ts", "a.ts"}, s.GeneratedFiles)
}

func TestReduceGenerationOutcomes(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		s := State{CurrentStep: StepGenerating, GenerationStatus: GenerationRunning}
		s = Reduce(s, GenerationComplete{})
		assert.Equal(t, StepComplete, s.CurrentStep)
		assert.Equal(t, GenerationSuccess, s.GenerationStatus)
	})

	t.Run("error", func(t *testing.T) {
		s := State{CurrentStep: StepGenerating, GenerationStatus: GenerationRunning}
		s = Reduce(s, GenerationError{Message: "generator failed: disk full"})
		assert.Equal(t, StepError, s.CurrentStep)
		assert.Equal(t, GenerationFailed, s.GenerationStatus)
		assert.Equal(t, "generator failed: disk full", s.Error)
	})
}

func TestReduceResetPreservesLibrariesRoot(t *testing.T) {
	s := NewState("/ws/libs")
	s = Reduce(s, SetSelection{Selection: SelectProvider})
	s = Reduce(s, SetLibraryName{Name: "stripe"})
	s = Reduce(s, SetExternalService{Service: "stripe"})
	s = Reduce(s, Next{})
	s = Reduce(s, AddGeneratedFile{Path: "x.ts"})

	reset := Reduce(s, Reset{})

	assert.Equal(t, NewState("/ws/libs"), reset)
}

func TestReduceGoTo(t *testing.T) {
	s := State{CurrentStep: StepConfirm}
	s = Reduce(s, GoTo{Step: StepSelectType})
	assert.Equal(t, StepSelectType, s.CurrentStep)
}
