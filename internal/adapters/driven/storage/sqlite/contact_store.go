package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

// contactStore implements driven.ContactStore.
type contactStore struct {
	store *Store
}

var _ driven.ContactStore = (*contactStore)(nil)

const contactColumns = `id, name, email, phone, notes, category_id, timezone, created_at, updated_at`

// Save stores or updates a contact.
func (s *contactStore) Save(ctx context.Context, contact domain.Contact) error {
	if contact.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO contacts (`+contactColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			notes = excluded.notes,
			category_id = excluded.category_id,
			timezone = excluded.timezone,
			updated_at = excluded.updated_at
	`, contact.ID.String(), contact.Name, nullString(contact.Email), nullString(contact.Phone),
		nullString(contact.Notes), nullString(contact.CategoryID.String()), nullString(contact.Timezone),
		formatTime(contact.CreatedAt), formatTime(contact.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving contact: %w", err)
	}
	return nil
}

// Get retrieves a contact by ID.
func (s *contactStore) Get(ctx context.Context, id domain.ContactID) (*domain.Contact, error) {
	row := s.store.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id.String())

	contact, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// List returns all contacts ordered by name.
func (s *contactStore) List(ctx context.Context) ([]domain.Contact, error) {
	return s.query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY name COLLATE NOCASE, id`)
}

// Delete removes a contact. Its check-ins go with it through the foreign key.
func (s *contactStore) Delete(ctx context.Context, id domain.ContactID) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	return nil
}

// Search matches query against name, email, phone and notes, ignoring case.
func (s *contactStore) Search(ctx context.Context, query string) ([]domain.Contact, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.List(ctx)
	}
	pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
	return s.query(ctx, `
		SELECT `+contactColumns+` FROM contacts
		WHERE LOWER(name) LIKE ? ESCAPE '\'
			OR LOWER(COALESCE(email, '')) LIKE ? ESCAPE '\'
			OR LOWER(COALESCE(phone, '')) LIKE ? ESCAPE '\'
			OR LOWER(COALESCE(notes, '')) LIKE ? ESCAPE '\'
		ORDER BY name COLLATE NOCASE, id
	`, pattern, pattern, pattern, pattern)
}

func (s *contactStore) query(ctx context.Context, query string, args ...any) ([]domain.Contact, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]domain.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return contacts, nil
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var contact domain.Contact
	var id, createdAt, updatedAt string
	var email, phone, notes, categoryID, timezone sql.NullString

	if err := row.Scan(&id, &contact.Name, &email, &phone, &notes,
		&categoryID, &timezone, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning contact: %w", err)
	}

	contact.ID = domain.ContactID(id)
	contact.Email = email.String
	contact.Phone = phone.String
	contact.Notes = notes.String
	contact.CategoryID = domain.CategoryID(categoryID.String)
	contact.Timezone = timezone.String
	contact.CreatedAt = parseTime(createdAt)
	contact.UpdatedAt = parseTime(updatedAt)
	return &contact, nil
}

// escapeLike escapes LIKE wildcards so they match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
