package driving

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// Scheduler manages background tasks like check-in reminders.
type Scheduler interface {
	// Start begins running scheduled tasks.
	// Blocks until context is cancelled or an error occurs.
	Start(ctx context.Context) error

	// RunOnce runs every enabled task immediately and waits for them.
	RunOnce(ctx context.Context) error

	// Reconfigure applies new reminder settings to a running scheduler.
	Reconfigure(ctx context.Context, settings domain.ReminderSettings) error

	// Stop gracefully stops all running tasks.
	Stop() error

	// Status returns the reminder task and up to limit of its latest runs.
	Status(ctx context.Context, limit int) (*domain.ReminderStatus, error)
}
