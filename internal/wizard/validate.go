package wizard

import (
	"regexp"
	"strings"
)

// ValidationResult is the outcome of a single field validation.
type ValidationResult struct {
	IsValid bool
	Error   string
}

// Rules bundles the compiled validation patterns. The patterns are
// injected rather than read from package-level state so tests can supply
// fixtures.
type Rules struct {
	name    *regexp.Regexp
	service *regexp.Regexp
}

// DefaultRules returns the standard naming rules: library names are
// kebab-case starting with a lowercase letter, external service names
// additionally allow uppercase letters.
func DefaultRules() Rules {
	return Rules{
		name:    regexp.MustCompile(`^[a-z][a-z0-9-]*$`),
		service: regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`),
	}
}

// ValidateName checks a candidate library name. Pure and total: it
// always returns a result, never an error.
func (r Rules) ValidateName(input string) ValidationResult {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ValidationResult{Error: "Name is required"}
	}
	if !r.name.MatchString(trimmed) {
		return ValidationResult{
			Error: "Name must start with lowercase letter, contain only lowercase letters, numbers, and hyphens",
		}
	}
	return ValidationResult{IsValid: true}
}

// ValidateExternalService checks a candidate external service name.
func (r Rules) ValidateExternalService(input string) ValidationResult {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ValidationResult{Error: "External service name is required for provider libraries"}
	}
	if !r.service.MatchString(trimmed) {
		return ValidationResult{
			Error: "External service name must start with a letter, contain only letters, numbers, and hyphens",
		}
	}
	return ValidationResult{IsValid: true}
}
