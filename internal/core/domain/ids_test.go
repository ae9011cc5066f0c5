package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDs_AreUUIDs(t *testing.T) {
	for _, id := range []string{NewCheckInID().String(), NewContactID().String(), NewCategoryID().String()} {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, NewCheckInID(), NewCheckInID())
}

func TestParseIDs(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCheckInID("  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = ParseContactID("")
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = ParseCategoryID("")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects inner whitespace", func(t *testing.T) {
		_, err := ParseContactID("a b")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		id, err := ParseCheckInID(" ci-1 ")
		require.NoError(t, err)
		assert.Equal(t, CheckInID("ci-1"), id)
	})
}

func TestCategoryID_IsZero(t *testing.T) {
	assert.True(t, CategoryID("").IsZero())
	assert.False(t, CategoryID("cat-1").IsZero())
}
