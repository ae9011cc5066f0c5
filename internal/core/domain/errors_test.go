package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrCategoryInUse", ErrCategoryInUse},
		{"ErrUnsupportedVersion", ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

// TestErrors_WrappedStillMatch tests wrapped errors keep their identity
func TestErrors_WrappedStillMatch(t *testing.T) {
	wrapped := fmt.Errorf("check-in ci-1: %w", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "ci-1")
}

func TestValidationError(t *testing.T) {
	err := invalid("notes", "too long")

	assert.Equal(t, "invalid notes: too long", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var vErr *ValidationError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &vErr))
	assert.Equal(t, "notes", vErr.Field)
}
