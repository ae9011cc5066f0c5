package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

// categoryStore implements driven.CategoryStore.
type categoryStore struct {
	store *Store
}

var _ driven.CategoryStore = (*categoryStore)(nil)

const categoryColumns = `id, name, frequency_value, frequency_unit, color, created_at, updated_at`

// Save stores or updates a category.
func (s *categoryStore) Save(ctx context.Context, category domain.Category) error {
	if category.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			frequency_value = excluded.frequency_value,
			frequency_unit = excluded.frequency_unit,
			color = excluded.color,
			updated_at = excluded.updated_at
	`, category.ID.String(), category.Name, category.Frequency.Value, category.Frequency.Unit.String(),
		nullString(category.Color), formatTime(category.CreatedAt), formatTime(category.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving category: %w", err)
	}
	return nil
}

// Get retrieves a category by ID.
func (s *categoryStore) Get(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	row := s.store.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id.String())

	category, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

// List returns all categories ordered by name.
func (s *categoryStore) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.store.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

// Delete removes a category. Contacts referencing it become uncategorized.
func (s *categoryStore) Delete(ctx context.Context, id domain.CategoryID) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var category domain.Category
	var id, unit, createdAt, updatedAt string
	var color sql.NullString

	if err := row.Scan(&id, &category.Name, &category.Frequency.Value, &unit,
		&color, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning category: %w", err)
	}

	category.ID = domain.CategoryID(id)
	category.Frequency.Unit = domain.FrequencyUnit(unit)
	category.Color = color.String
	category.CreatedAt = parseTime(createdAt)
	category.UpdatedAt = parseTime(updatedAt)
	return &category, nil
}
