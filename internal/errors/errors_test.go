package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailErrorFormat(t *testing.T) {
	err := &DetailError{
		Type:     "validation failed",
		Message:  "name contains invalid characters",
		Location: "libs/contract/Bad_Name",
		Hint:     "Use lowercase letters, numbers, and hyphens.",
		Cause:    ErrValidation,
	}

	msg := err.Error()
	assert.Contains(t, msg, "Error: validation failed")
	assert.Contains(t, msg, "Location: libs/contract/Bad_Name")
	assert.Contains(t, msg, "name contains invalid characters")
	assert.Contains(t, msg, "Hint: Use lowercase letters")
}

func TestDetailErrorUnwrap(t *testing.T) {
	err := NewValidationError("bad name", "", "")
	assert.ErrorIs(t, err, ErrValidation)

	err = NewNotFoundError("no workspace", "/tmp", "")
	assert.ErrorIs(t, err, ErrNotFound)

	cause := errors.New("disk full")
	err = NewGenerationError("writing files", cause)
	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, cause)
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit exit error", NewExitError(errors.New("boom"), 7), 7},
		{"validation sentinel", fmt.Errorf("wrapped: %w", ErrValidation), ExitValidationError},
		{"not found sentinel", fmt.Errorf("wrapped: %w", ErrNotFound), ExitNotFound},
		{"generation sentinel", fmt.Errorf("wrapped: %w", ErrGeneration), ExitGeneralError},
		{"unknown", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}
