package driving

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// CategoryService manages categories.
type CategoryService interface {
	// Create stores a new category.
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)

	// Update modifies an existing category.
	Update(ctx context.Context, category domain.Category) (*domain.Category, error)

	// Get retrieves a category by ID.
	Get(ctx context.Context, id domain.CategoryID) (*domain.Category, error)

	// List returns all categories sorted by name.
	List(ctx context.Context) ([]domain.Category, error)

	// Delete removes a category no contact references.
	Delete(ctx context.Context, id domain.CategoryID) error

	// SeedDefaults creates the default categories when none exist.
	// Returns the categories created.
	SeedDefaults(ctx context.Context) ([]domain.Category, error)
}
