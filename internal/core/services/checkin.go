package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kith-cli/internal/logger"
)

// Ensure CheckInService implements the interface.
var _ driving.CheckInService = (*CheckInService)(nil)

// CheckInService runs the check-in lifecycle: scheduling, completion with
// automatic recurrence, rescheduling and the read-side queries.
type CheckInService struct {
	checkIns   driven.CheckInStore
	contacts   driven.ContactStore
	categories driven.CategoryStore
	settings   driving.SettingsService
	clock      domain.Clock
}

// NewCheckInService creates a new check-in service.
// settings may be nil, in which case domain defaults apply.
func NewCheckInService(
	checkIns driven.CheckInStore,
	contacts driven.ContactStore,
	categories driven.CategoryStore,
	settings driving.SettingsService,
	clock domain.Clock,
) *CheckInService {
	return &CheckInService{
		checkIns:   checkIns,
		contacts:   contacts,
		categories: categories,
		settings:   settings,
		clock:      clock,
	}
}

func (s *CheckInService) ready() error {
	if s.checkIns == nil || s.contacts == nil || s.categories == nil {
		return domain.ErrNotImplemented
	}
	return nil
}

// ScheduleInitialCheckIn schedules a contact's first check-in one frequency
// step after the base date.
func (s *CheckInService) ScheduleInitialCheckIn(
	ctx context.Context,
	input driving.ScheduleInitialInput,
) (domain.CheckIn, error) {
	if err := s.ready(); err != nil {
		return domain.CheckIn{}, err
	}

	now := s.clock.Now()
	base := now
	if !input.BaseDate.IsZero() {
		base = input.BaseDate.Time()
	}

	category, err := s.categoryFor(ctx, input.ContactID)
	if err != nil {
		return domain.CheckIn{}, err
	}

	scheduled, err := domain.NewScheduledDate(domain.NextCheckInDate(base, category.Frequency))
	if err != nil {
		return domain.CheckIn{}, err
	}

	checkIn := domain.NewCheckIn(domain.CheckInRecord{
		ID:            domain.NewCheckInID(),
		ContactID:     input.ContactID,
		ScheduledDate: scheduled,
	}, now)

	logger.Debug("scheduling initial check-in for %s on %s (%s)", input.ContactID, scheduled, category.Frequency)
	if err := s.checkIns.Save(ctx, checkIn); err != nil {
		return domain.CheckIn{}, fmt.Errorf("save check-in: %w", err)
	}
	return checkIn, nil
}

// CreateManualCheckIn stores a check-in on an explicit date.
func (s *CheckInService) CreateManualCheckIn(
	ctx context.Context,
	input driving.CreateManualInput,
) (domain.CheckIn, error) {
	if err := s.ready(); err != nil {
		return domain.CheckIn{}, err
	}
	if input.ScheduledDate.IsZero() {
		return domain.CheckIn{}, &domain.ValidationError{Field: "scheduled date", Reason: "is required"}
	}
	if _, err := s.contact(ctx, input.ContactID); err != nil {
		return domain.CheckIn{}, err
	}

	checkIn := domain.NewCheckIn(domain.CheckInRecord{
		ID:            domain.NewCheckInID(),
		ContactID:     input.ContactID,
		ScheduledDate: input.ScheduledDate,
		Notes:         input.Notes,
	}, s.clock.Now())

	logger.Debug("creating manual check-in for %s on %s", input.ContactID, input.ScheduledDate)
	if err := s.checkIns.Save(ctx, checkIn); err != nil {
		return domain.CheckIn{}, fmt.Errorf("save check-in: %w", err)
	}
	return checkIn, nil
}

// CompleteCheckIn records completion and schedules the follow-up.
// The follow-up is anchored to the original scheduled date so the cadence
// does not drift when check-ins are completed late.
// All lookups happen before the first write.
func (s *CheckInService) CompleteCheckIn(
	ctx context.Context,
	input driving.CompleteInput,
) (*driving.CompleteResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if !input.CompletionDate.IsSet() {
		return nil, &domain.ValidationError{Field: "completion date", Reason: "is required"}
	}

	original, err := s.Get(ctx, input.CheckInID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryFor(ctx, original.ContactID())
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	completed := original.WithCompletion(input.CompletionDate, input.Notes, now)

	nextDate, err := domain.NewScheduledDate(
		domain.NextCheckInDate(original.ScheduledDate().Time(), category.Frequency),
	)
	if err != nil {
		return nil, err
	}
	next := domain.NewCheckIn(domain.CheckInRecord{
		ID:            domain.NewCheckInID(),
		ContactID:     original.ContactID(),
		ScheduledDate: nextDate,
	}, now)

	logger.Section("Complete Check-in")
	logger.Debug("completing check-in %s, next on %s", completed.ID(), nextDate)

	if err := s.checkIns.Save(ctx, completed); err != nil {
		return nil, fmt.Errorf("save completed check-in %s: %w", completed.ID(), err)
	}
	if err := s.checkIns.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save next check-in: %w", err)
	}

	logger.Info("completed check-in %s for %s", completed.ID(), completed.ContactID())
	return &driving.CompleteResult{Completed: completed, Next: next}, nil
}

// RescheduleCheckIn moves a check-in, leaving its completion and notes untouched.
func (s *CheckInService) RescheduleCheckIn(
	ctx context.Context,
	input driving.RescheduleInput,
) (domain.CheckIn, error) {
	if err := s.ready(); err != nil {
		return domain.CheckIn{}, err
	}
	if input.NewScheduledDate.IsZero() {
		return domain.CheckIn{}, &domain.ValidationError{Field: "scheduled date", Reason: "is required"}
	}

	existing, err := s.Get(ctx, input.CheckInID)
	if err != nil {
		return domain.CheckIn{}, err
	}

	moved := existing.WithScheduledDate(input.NewScheduledDate, s.clock.Now())
	logger.Debug("rescheduling check-in %s from %s to %s",
		moved.ID(), existing.ScheduledDate(), input.NewScheduledDate)

	if err := s.checkIns.Save(ctx, moved); err != nil {
		return domain.CheckIn{}, fmt.Errorf("save check-in %s: %w", moved.ID(), err)
	}
	return moved, nil
}

// OverdueCheckIns returns overdue check-ins, earliest first.
func (s *CheckInService) OverdueCheckIns(ctx context.Context) ([]domain.CheckIn, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	checkIns, err := s.checkIns.ListByStatus(ctx, domain.StatusOverdue)
	if err != nil {
		return nil, fmt.Errorf("list overdue check-ins: %w", err)
	}
	domain.SortByScheduledDate(checkIns)
	return checkIns, nil
}

// UpcomingCheckIns returns scheduled check-ins in [now, now+days].
func (s *CheckInService) UpcomingCheckIns(ctx context.Context, days int) ([]domain.CheckIn, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, &domain.ValidationError{Field: "days", Reason: fmt.Sprintf("%d is negative", days)}
	}
	if days == 0 {
		days = s.defaultUpcomingDays()
	}

	now := s.clock.Now()
	inRange, err := s.checkIns.ListByDateRange(ctx, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("list check-ins by date: %w", err)
	}

	upcoming := make([]domain.CheckIn, 0, len(inRange))
	for _, c := range inRange {
		if c.Status() == domain.StatusScheduled {
			upcoming = append(upcoming, c)
		}
	}
	domain.SortByScheduledDate(upcoming)
	return upcoming, nil
}

// CheckInHistory returns every check-in for a contact, oldest first.
func (s *CheckInService) CheckInHistory(ctx context.Context, contactID domain.ContactID) ([]domain.CheckIn, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	checkIns, err := s.checkIns.ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("list check-ins for contact %s: %w", contactID, err)
	}
	domain.SortByScheduledDate(checkIns)
	return checkIns, nil
}

// TodayCheckIns returns uncompleted check-ins scheduled on today's
// calendar day in the clock's location.
func (s *CheckInService) TodayCheckIns(ctx context.Context) ([]domain.CheckIn, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

	inRange, err := s.checkIns.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list check-ins by date: %w", err)
	}

	today := make([]domain.CheckIn, 0, len(inRange))
	for _, c := range inRange {
		if !c.IsCompleted() && domain.SameDay(now, c.ScheduledDate().Time()) {
			today = append(today, c)
		}
	}
	domain.SortByScheduledDate(today)
	return today, nil
}

// Get retrieves a single check-in.
func (s *CheckInService) Get(ctx context.Context, id domain.CheckInID) (*domain.CheckIn, error) {
	if s.checkIns == nil {
		return nil, domain.ErrNotImplemented
	}
	checkIn, err := s.checkIns.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check-in %s: %w", id, err)
	}
	return checkIn, nil
}

func (s *CheckInService) contact(ctx context.Context, id domain.ContactID) (*domain.Contact, error) {
	contact, err := s.contacts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("contact %s: %w", id, err)
	}
	return contact, nil
}

// categoryFor resolves the category that drives a contact's recurrence.
// An uncategorized contact has nothing to recur on and reports ErrNotFound.
func (s *CheckInService) categoryFor(ctx context.Context, contactID domain.ContactID) (*domain.Category, error) {
	contact, err := s.contact(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if !contact.IsCategorized() {
		return nil, fmt.Errorf("category for contact %s: %w", contactID, domain.ErrNotFound)
	}
	category, err := s.categories.Get(ctx, contact.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", contact.CategoryID, err)
	}
	return category, nil
}

func (s *CheckInService) defaultUpcomingDays() int {
	if s.settings == nil {
		return domain.DefaultUpcomingDays
	}
	settings, err := s.settings.Get()
	if err != nil || settings.CheckIns.UpcomingDays < 1 {
		return domain.DefaultUpcomingDays
	}
	return settings.CheckIns.UpcomingDays
}
