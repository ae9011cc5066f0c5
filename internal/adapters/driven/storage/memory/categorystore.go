package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

// Ensure CategoryStore implements the interface.
var _ driven.CategoryStore = (*CategoryStore)(nil)

// CategoryStore is an in-memory implementation of driven.CategoryStore.
type CategoryStore struct {
	mu         sync.RWMutex
	categories map[domain.CategoryID]domain.Category
}

// NewCategoryStore creates a new in-memory category store.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{
		categories: make(map[domain.CategoryID]domain.Category),
	}
}

// Save stores or updates a category.
func (s *CategoryStore) Save(_ context.Context, category domain.Category) error {
	if category.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[category.ID] = category
	return nil
}

// Get retrieves a category by ID.
func (s *CategoryStore) Get(_ context.Context, id domain.CategoryID) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &category, nil
}

// List returns all categories.
func (s *CategoryStore) List(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Category, 0, len(s.categories))
	for _, category := range s.categories {
		result = append(result, category)
	}
	domain.SortCategoriesByName(result)
	return result, nil
}

// Delete removes a category.
func (s *CategoryStore) Delete(_ context.Context, id domain.CategoryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.categories, id)
	return nil
}
