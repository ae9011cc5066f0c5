package driving

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// ContactService manages contacts.
type ContactService interface {
	// Create stores a new contact and, when it has a category, schedules
	// its first check-in.
	Create(ctx context.Context, contact domain.Contact) (*domain.Contact, error)

	// Update modifies an existing contact.
	Update(ctx context.Context, contact domain.Contact) (*domain.Contact, error)

	// Get retrieves a contact by ID.
	Get(ctx context.Context, id domain.ContactID) (*domain.Contact, error)

	// List returns all contacts sorted by name.
	List(ctx context.Context) ([]domain.Contact, error)

	// Search returns contacts matching query, sorted by name.
	Search(ctx context.Context, query string) ([]domain.Contact, error)

	// Delete removes a contact and its check-ins.
	Delete(ctx context.Context, id domain.ContactID) error
}
