package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// CheckInStore persists check-ins.
type CheckInStore interface {
	// Save stores or fully replaces a check-in by ID.
	Save(ctx context.Context, checkIn domain.CheckIn) error

	// Get retrieves a check-in by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id domain.CheckInID) (*domain.CheckIn, error)

	// List returns all check-ins.
	List(ctx context.Context) ([]domain.CheckIn, error)

	// ListByContact returns all check-ins for a contact.
	ListByContact(ctx context.Context, contactID domain.ContactID) ([]domain.CheckIn, error)

	// ListByStatus returns check-ins whose status, derived at read time, equals status.
	ListByStatus(ctx context.Context, status domain.CheckInStatus) ([]domain.CheckIn, error)

	// ListByDateRange returns check-ins whose scheduled date lies in [start, end].
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.CheckIn, error)

	// Delete removes a check-in. Deleting a missing check-in is not an error.
	Delete(ctx context.Context, id domain.CheckInID) error
}
