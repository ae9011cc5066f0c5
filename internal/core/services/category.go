package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// Ensure CategoryService implements the interface.
var _ driving.CategoryService = (*CategoryService)(nil)

// CategoryService manages categories.
type CategoryService struct {
	categories driven.CategoryStore
	contacts   driven.ContactStore
	clock      domain.Clock
}

// NewCategoryService creates a new category service.
func NewCategoryService(
	categories driven.CategoryStore,
	contacts driven.ContactStore,
	clock domain.Clock,
) *CategoryService {
	return &CategoryService{
		categories: categories,
		contacts:   contacts,
		clock:      clock,
	}
}

// Create stores a new category. Names are unique, ignoring case.
func (s *CategoryService) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if s.categories == nil {
		return nil, domain.ErrNotImplemented
	}

	category.Name = strings.TrimSpace(category.Name)
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, category); err != nil {
		return nil, err
	}

	if category.ID == "" {
		category.ID = domain.NewCategoryID()
	}
	now := s.clock.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return &category, nil
}

// Update modifies an existing category.
func (s *CategoryService) Update(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if s.categories == nil {
		return nil, domain.ErrNotImplemented
	}

	existing, err := s.Get(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(category.Name)
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, category); err != nil {
		return nil, err
	}

	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = s.clock.Now()
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("save category %s: %w", category.ID, err)
	}
	return &category, nil
}

// Get retrieves a category by ID.
func (s *CategoryService) Get(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	if s.categories == nil {
		return nil, domain.ErrNotImplemented
	}
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", id, err)
	}
	return category, nil
}

// List returns all categories sorted by name.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if s.categories == nil {
		return nil, domain.ErrNotImplemented
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	domain.SortCategoriesByName(categories)
	return categories, nil
}

// Delete removes a category that no contact references.
func (s *CategoryService) Delete(ctx context.Context, id domain.CategoryID) error {
	if s.categories == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if s.contacts != nil {
		contacts, err := s.contacts.List(ctx)
		if err != nil {
			return fmt.Errorf("list contacts: %w", err)
		}
		for i := range contacts {
			if contacts[i].CategoryID == id {
				return fmt.Errorf("category %s: %w", id, domain.ErrCategoryInUse)
			}
		}
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

// SeedDefaults creates the default categories into an empty store.
func (s *CategoryService) SeedDefaults(ctx context.Context) ([]domain.Category, error) {
	if s.categories == nil {
		return nil, domain.ErrNotImplemented
	}
	existing, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(existing) > 0 {
		return nil, nil
	}

	defaults := domain.DefaultCategories()
	created := make([]domain.Category, 0, len(defaults))
	for _, c := range defaults {
		saved, err := s.Create(ctx, c)
		if err != nil {
			return created, err
		}
		created = append(created, *saved)
	}
	return created, nil
}

func (s *CategoryService) checkNameFree(ctx context.Context, category domain.Category) error {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	for i := range categories {
		if categories[i].ID != category.ID && strings.EqualFold(categories[i].Name, category.Name) {
			return fmt.Errorf("category %q: %w", category.Name, domain.ErrAlreadyExists)
		}
	}
	return nil
}
