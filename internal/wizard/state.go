package wizard

// GenerationStatus tracks the progress of the generation phase.
type GenerationStatus string

const (
	GenerationIdle    GenerationStatus = "idle"
	GenerationRunning GenerationStatus = "running"
	GenerationSuccess GenerationStatus = "success"
	GenerationFailed  GenerationStatus = "error"
)

// State is the wizard's aggregate root. It is created once per session
// and mutated exclusively through Reduce; LibrariesRoot is fixed for the
// session's lifetime (Reset preserves it).
type State struct {
	CurrentStep   Step
	LibrariesRoot string

	Selection       Selection
	LibraryType     LibraryType
	LibraryName     string
	ExternalService string
	Options         Options

	FilesToCreate []FilePreview

	GenerationStatus GenerationStatus
	GeneratedFiles   []string
	Error            string
}

// NewState returns the initial state for a wizard session rooted at the
// given libraries directory.
func NewState(librariesRoot string) State {
	return State{
		CurrentStep:      StepSelectType,
		LibrariesRoot:    librariesRoot,
		GenerationStatus: GenerationIdle,
	}
}

// Result snapshots the state into the immutable value handed to the
// execution dispatcher.
func (s State) Result() Result {
	return Result{
		LibraryType:     s.LibraryType,
		LibraryName:     s.LibraryName,
		ExternalService: s.ExternalService,
		TargetDirectory: TargetDirectory(s.LibrariesRoot, s.LibraryType, s.LibraryName),
		Options:         s.Options.clone(),
		FilesToCreate:   append([]FilePreview(nil), s.FilesToCreate...),
	}
}
