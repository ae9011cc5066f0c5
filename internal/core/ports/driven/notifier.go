package driven

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// Notifier delivers check-in reminders.
type Notifier interface {
	// Notify delivers a single reminder.
	Notify(ctx context.Context, reminder domain.Reminder) error
}
