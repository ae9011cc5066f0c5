package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

// Ensure CheckInStore implements the interface.
var _ driven.CheckInStore = (*CheckInStore)(nil)

// CheckInStore is an in-memory implementation of driven.CheckInStore.
// Only records are kept; every read rebuilds check-ins at the store's clock.
type CheckInStore struct {
	mu      sync.RWMutex
	records map[domain.CheckInID]domain.CheckInRecord
	clock   domain.Clock
}

// NewCheckInStore creates a new in-memory check-in store.
// A nil clock means time.Now.
func NewCheckInStore(clock domain.Clock) *CheckInStore {
	return &CheckInStore{
		records: make(map[domain.CheckInID]domain.CheckInRecord),
		clock:   clock,
	}
}

// Save stores or fully replaces a check-in.
func (s *CheckInStore) Save(_ context.Context, checkIn domain.CheckIn) error {
	if checkIn.ID() == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[checkIn.ID()] = checkIn.Record()
	return nil
}

// Get retrieves a check-in by ID.
func (s *CheckInStore) Get(_ context.Context, id domain.CheckInID) (*domain.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	checkIn := domain.RestoreCheckIn(rec, s.clock.Now())
	return &checkIn, nil
}

// List returns all check-ins.
func (s *CheckInStore) List(_ context.Context) ([]domain.CheckIn, error) {
	return s.collect(func(domain.CheckIn) bool { return true }), nil
}

// ListByContact returns all check-ins for a contact.
func (s *CheckInStore) ListByContact(_ context.Context, contactID domain.ContactID) ([]domain.CheckIn, error) {
	return s.collect(func(c domain.CheckIn) bool { return c.ContactID() == contactID }), nil
}

// ListByStatus returns check-ins whose current status equals status.
func (s *CheckInStore) ListByStatus(_ context.Context, status domain.CheckInStatus) ([]domain.CheckIn, error) {
	if !status.IsValid() {
		return nil, &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}
	return s.collect(func(c domain.CheckIn) bool { return c.Status() == status }), nil
}

// ListByDateRange returns check-ins scheduled within [start, end].
func (s *CheckInStore) ListByDateRange(_ context.Context, start, end time.Time) ([]domain.CheckIn, error) {
	return s.collect(func(c domain.CheckIn) bool {
		t := c.ScheduledDate().Time()
		return !t.Before(start) && !t.After(end)
	}), nil
}

// Delete removes a check-in.
func (s *CheckInStore) Delete(_ context.Context, id domain.CheckInID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// collect returns matching check-ins ordered by scheduled date.
func (s *CheckInStore) collect(keep func(domain.CheckIn) bool) []domain.CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.clock.Now()
	result := make([]domain.CheckIn, 0, len(s.records))
	for _, rec := range s.records {
		checkIn := domain.RestoreCheckIn(rec, now)
		if keep(checkIn) {
			result = append(result, checkIn)
		}
	}
	domain.SortByScheduledDate(result)
	return result
}
