package wizard

// Action is a request to advance the wizard state. Actions carry
// pre-computed payloads: validation and file I/O happen before dispatch,
// never inside Reduce.
type Action interface {
	isAction()
}

// SetSelection records the user's choice at the select-type step and
// derives the library type (init has none).
type SetSelection struct{ Selection Selection }

// SetLibraryName records the validated library name.
type SetLibraryName struct{ Name string }

// SetExternalService records the validated external service name.
type SetExternalService struct{ Service string }

// SetOptions replaces the options bag wholesale. The presentation layer
// computes the merged value before dispatching.
type SetOptions struct{ Options Options }

// SetFilesToCreate records the file-preview resolver's output.
type SetFilesToCreate struct{ Files []FilePreview }

// Next applies the forward step transition.
type Next struct{}

// Prev applies the backward step transition.
type Prev struct{}

// GoTo jumps to an arbitrary step, used for corrective navigation.
type GoTo struct{ Step Step }

// StartGeneration is the single transition from confirmed intent to
// delegated execution.
type StartGeneration struct{}

// AddGeneratedFile appends one emitted file path. Order matters: the UI
// shows the most recent entries and a count of the rest.
type AddGeneratedFile struct{ Path string }

// GenerationComplete marks the session successful.
type GenerationComplete struct{}

// GenerationError moves the session to the error state with a message.
type GenerationError struct{ Message string }

// Reset reinitializes the session, preserving only the libraries root.
type Reset struct{}

func (SetSelection) isAction()       {}
func (SetLibraryName) isAction()     {}
func (SetExternalService) isAction() {}
func (SetOptions) isAction()         {}
func (SetFilesToCreate) isAction()   {}
func (Next) isAction()               {}
func (Prev) isAction()               {}
func (GoTo) isAction()               {}
func (StartGeneration) isAction()    {}
func (AddGeneratedFile) isAction()   {}
func (GenerationComplete) isAction() {}
func (GenerationError) isAction()    {}
func (Reset) isAction()              {}

// Reduce applies an action to a state and returns the successor state.
// It is pure and total: unknown conditions leave the state unchanged,
// and the returned state never shares slice storage with the input.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetSelection:
		s.Selection = a.Selection
		if t, ok := a.Selection.LibraryType(); ok {
			s.LibraryType = t
		} else {
			s.LibraryType = ""
		}
		// ExternalService is defined only while a provider is selected;
		// picking any other type discards the stale value.
		if a.Selection != SelectProvider {
			s.ExternalService = ""
		}
		return s

	case SetLibraryName:
		s.LibraryName = a.Name
		return s

	case SetExternalService:
		s.ExternalService = a.Service
		return s

	case SetOptions:
		s.Options = a.Options.clone()
		return s

	case SetFilesToCreate:
		s.FilesToCreate = append([]FilePreview(nil), a.Files...)
		return s

	case Next:
		s.CurrentStep = NextStep(s)
		return s

	case Prev:
		s.CurrentStep = PreviousStep(s)
		return s

	case GoTo:
		s.CurrentStep = a.Step
		return s

	case StartGeneration:
		s.CurrentStep = StepGenerating
		s.GenerationStatus = GenerationRunning
		s.GeneratedFiles = nil
		s.Error = ""
		return s

	case AddGeneratedFile:
		s.GeneratedFiles = append(append([]string(nil), s.GeneratedFiles...), a.Path)
		return s

	case GenerationComplete:
		s.CurrentStep = StepComplete
		s.GenerationStatus = GenerationSuccess
		return s

	case GenerationError:
		s.CurrentStep = StepError
		s.GenerationStatus = GenerationFailed
		s.Error = a.Message
		return s

	case Reset:
		return NewState(s.LibrariesRoot)

	default:
		return s
	}
}
