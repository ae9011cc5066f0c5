package driving

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// ScheduleInitialInput requests the first automatic check-in for a contact.
type ScheduleInitialInput struct {
	ContactID domain.ContactID

	// BaseDate anchors the schedule. Zero means now.
	BaseDate domain.ScheduledDate
}

// CreateManualInput requests a standalone check-in on a chosen date.
type CreateManualInput struct {
	ContactID     domain.ContactID
	ScheduledDate domain.ScheduledDate
	Notes         domain.CheckInNotes
}

// CompleteInput marks a check-in as done.
type CompleteInput struct {
	CheckInID      domain.CheckInID
	CompletionDate domain.CompletionDate
	Notes          domain.CheckInNotes
}

// CompleteResult holds both records written by CompleteCheckIn.
type CompleteResult struct {
	// Completed is the original check-in with its completion recorded.
	Completed domain.CheckIn

	// Next is the freshly scheduled follow-up.
	Next domain.CheckIn
}

// RescheduleInput moves a check-in to a new date.
type RescheduleInput struct {
	CheckInID        domain.CheckInID
	NewScheduledDate domain.ScheduledDate
}

// CheckInService runs the check-in lifecycle.
type CheckInService interface {
	// ScheduleInitialCheckIn schedules one frequency step after the base
	// date using the contact's category.
	ScheduleInitialCheckIn(ctx context.Context, input ScheduleInitialInput) (domain.CheckIn, error)

	// CreateManualCheckIn stores a check-in on an explicit date without
	// consulting the category.
	CreateManualCheckIn(ctx context.Context, input CreateManualInput) (domain.CheckIn, error)

	// CompleteCheckIn records completion and schedules the next check-in
	// one frequency step after the original scheduled date.
	CompleteCheckIn(ctx context.Context, input CompleteInput) (*CompleteResult, error)

	// RescheduleCheckIn replaces only the scheduled date.
	RescheduleCheckIn(ctx context.Context, input RescheduleInput) (domain.CheckIn, error)

	// OverdueCheckIns returns all overdue check-ins.
	OverdueCheckIns(ctx context.Context) ([]domain.CheckIn, error)

	// UpcomingCheckIns returns scheduled check-ins due within the next days
	// days, today included. Zero days means the configured default.
	UpcomingCheckIns(ctx context.Context, days int) ([]domain.CheckIn, error)

	// CheckInHistory returns every check-in for a contact, oldest first.
	CheckInHistory(ctx context.Context, contactID domain.ContactID) ([]domain.CheckIn, error)

	// TodayCheckIns returns uncompleted check-ins scheduled on the current
	// calendar day.
	TodayCheckIns(ctx context.Context) ([]domain.CheckIn, error)

	// Get retrieves a single check-in.
	Get(ctx context.Context, id domain.CheckInID) (*domain.CheckIn, error)
}
