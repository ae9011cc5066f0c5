package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

func TestCategoryAdd(t *testing.T) {
	env := setupTestServices(t)

	out, err := runCommand(t, "category", "add", "Close Friends", "--every", "2 weeks", "--color", "#7C3AED")

	require.NoError(t, err)
	assert.Contains(t, out, "Created category Close Friends (every 2 weeks)")
	categories, err := env.categories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "#7C3AED", categories[0].Color)
	assert.Contains(t, out, categories[0].ID.String())
}

func TestCategoryAdd_RequiresFrequency(t *testing.T) {
	setupTestServices(t)

	_, err := runCommand(t, "category", "add", "Family")

	assert.ErrorContains(t, err, "every")
}

func TestCategoryAdd_InvalidFrequency(t *testing.T) {
	setupTestServices(t)

	_, err := runCommand(t, "category", "add", "Family", "-e", "2 fortnights")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryAdd_DuplicateName(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	_, err := runCommand(t, "category", "add", "friends", "-e", "month")

	assert.Error(t, err)
}

func TestCategoryList_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := runCommand(t, "category", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No categories")
}

func TestCategorySeed(t *testing.T) {
	setupTestServices(t)

	out, err := runCommand(t, "category", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 4 default categories")

	out, err = runCommand(t, "category", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")

	out, err = runCommand(t, "categories", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Family")
	assert.Contains(t, out, "every 2 weeks")
}

func TestCategoryUpdate(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	out, err := runCommand(t, "category", "update", "friends", "--every", "month")

	require.NoError(t, err)
	assert.Contains(t, out, "Updated category Friends (every month)")
	category, err := env.categories.Get(context.Background(), "friends")
	require.NoError(t, err)
	assert.Equal(t, "Friends", category.Name)
	assert.Equal(t, domain.UnitMonths, category.Frequency.Unit)
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := runCommand(t, "category", "update", "missing", "--name", "X")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRemove(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	_, err := runCommand(t, "category", "remove", "friends")
	require.ErrorIs(t, err, domain.ErrCategoryInUse)
	assert.Contains(t, err.Error(), "move its contacts")

	env.seedCategory(t, "spare", "Spare", domain.CheckInFrequency{Value: 1, Unit: domain.UnitDays})
	out, err := runCommand(t, "category", "remove", "spare")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed category spare")
}

func TestCategory_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := runCommand(t, "category", "list")

	assert.ErrorContains(t, err, "not configured")
}
