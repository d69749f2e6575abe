package wizard

// Step is one discrete screen in the wizard flow.
type Step string

const (
	StepSelectType           Step = "select-type"
	StepEnterName            Step = "enter-name"
	StepEnterExternalService Step = "enter-external-service"
	StepConfigureOptions     Step = "configure-options"
	StepPreview              Step = "preview"
	StepConfirm              Step = "confirm"
	StepGenerating           Step = "generating"
	StepComplete             Step = "complete"
	StepError                Step = "error"
)

// NextStep returns the step that follows the state's current step.
//
// Two branches exist: the init selection jumps straight from select-type
// to preview, and provider libraries insert the external-service step
// between name entry and options. The generating step does not advance
// here — completion and failure are explicit actions.
func NextStep(s State) Step {
	switch s.CurrentStep {
	case StepSelectType:
		if s.Selection == SelectInit {
			return StepPreview
		}
		return StepEnterName
	case StepEnterName:
		if s.LibraryType == TypeProvider {
			return StepEnterExternalService
		}
		return StepConfigureOptions
	case StepEnterExternalService:
		return StepConfigureOptions
	case StepConfigureOptions:
		return StepPreview
	case StepPreview:
		return StepConfirm
	case StepConfirm:
		return StepGenerating
	default:
		// generating, complete, and error hold their position.
		return s.CurrentStep
	}
}

// PreviousStep is the structural inverse of NextStep along the happy
// path, with the provider detour applied in reverse.
func PreviousStep(s State) Step {
	switch s.CurrentStep {
	case StepEnterName:
		return StepSelectType
	case StepEnterExternalService:
		return StepEnterName
	case StepConfigureOptions:
		if s.LibraryType == TypeProvider {
			return StepEnterExternalService
		}
		return StepEnterName
	case StepPreview:
		if s.Selection == SelectInit {
			return StepSelectType
		}
		return StepConfigureOptions
	case StepConfirm:
		return StepPreview
	default:
		return s.CurrentStep
	}
}
