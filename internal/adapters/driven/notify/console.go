package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

// Ensure Console implements the interface.
var _ driven.Notifier = (*Console)(nil)

// Console writes reminders as plain text lines.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole creates a console notifier. A nil writer means os.Stdout.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

// Notify writes a single reminder line, e.g.
//
//	[overdue] Alice: check-in due 2026-02-01 (id 3f2a...)
func (c *Console) Notify(ctx context.Context, reminder domain.Reminder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	checkIn := reminder.CheckIn

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, "[%s] %s: check-in due %s (id %s)\n",
		checkIn.Status(), reminder.ContactName,
		checkIn.ScheduledDate().Time().Format(domain.DateLayout), checkIn.ID())
	return err
}
