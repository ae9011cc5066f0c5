package driven

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// CategoryStore persists categories.
type CategoryStore interface {
	// Save stores or updates a category.
	Save(ctx context.Context, category domain.Category) error

	// Get retrieves a category by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id domain.CategoryID) (*domain.Category, error)

	// List returns all categories.
	List(ctx context.Context) ([]domain.Category, error)

	// Delete removes a category.
	Delete(ctx context.Context, id domain.CategoryID) error
}
