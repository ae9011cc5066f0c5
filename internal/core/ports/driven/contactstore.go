package driven

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// ContactStore persists contacts.
type ContactStore interface {
	// Save stores or updates a contact.
	Save(ctx context.Context, contact domain.Contact) error

	// Get retrieves a contact by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id domain.ContactID) (*domain.Contact, error)

	// List returns all contacts.
	List(ctx context.Context) ([]domain.Contact, error)

	// Delete removes a contact.
	Delete(ctx context.Context, id domain.ContactID) error

	// Search returns contacts whose name, email, phone or notes contain query,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]domain.Contact, error)
}
