package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

// --- Mock implementations shared by service tests ---

// testNow is the fixed instant every service test runs at.
var testNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() domain.Clock {
	return func() time.Time { return testNow }
}

// mockCheckInStore implements driven.CheckInStore for testing.
// Like the real stores it keeps only records and rebuilds status on read.
type mockCheckInStore struct {
	mu       sync.RWMutex
	records  map[domain.CheckInID]domain.CheckInRecord
	order    []domain.CheckInID
	clock    domain.Clock
	saves    int
	saveErr  error
	failOnNo int // fail the Nth save (1-based); 0 disables
	listErr  error
}

func newMockCheckInStore(clock domain.Clock) *mockCheckInStore {
	return &mockCheckInStore{
		records: make(map[domain.CheckInID]domain.CheckInRecord),
		clock:   clock,
	}
}

func (m *mockCheckInStore) Save(_ context.Context, checkIn domain.CheckIn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil && (m.failOnNo == 0 || m.failOnNo == m.saves) {
		return m.saveErr
	}
	if _, exists := m.records[checkIn.ID()]; !exists {
		m.order = append(m.order, checkIn.ID())
	}
	m.records[checkIn.ID()] = checkIn.Record()
	return nil
}

func (m *mockCheckInStore) Get(_ context.Context, id domain.CheckInID) (*domain.CheckIn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := domain.RestoreCheckIn(rec, m.clock.Now())
	return &c, nil
}

func (m *mockCheckInStore) filter(keep func(domain.CheckIn) bool) ([]domain.CheckIn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	now := m.clock.Now()
	out := make([]domain.CheckIn, 0, len(m.order))
	for _, id := range m.order {
		rec, ok := m.records[id]
		if !ok {
			continue
		}
		c := domain.RestoreCheckIn(rec, now)
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCheckInStore) List(_ context.Context) ([]domain.CheckIn, error) {
	return m.filter(func(domain.CheckIn) bool { return true })
}

func (m *mockCheckInStore) ListByContact(_ context.Context, contactID domain.ContactID) ([]domain.CheckIn, error) {
	return m.filter(func(c domain.CheckIn) bool { return c.ContactID() == contactID })
}

func (m *mockCheckInStore) ListByStatus(_ context.Context, status domain.CheckInStatus) ([]domain.CheckIn, error) {
	return m.filter(func(c domain.CheckIn) bool { return c.Status() == status })
}

func (m *mockCheckInStore) ListByDateRange(_ context.Context, start, end time.Time) ([]domain.CheckIn, error) {
	return m.filter(func(c domain.CheckIn) bool {
		t := c.ScheduledDate().Time()
		return !t.Before(start) && !t.After(end)
	})
}

func (m *mockCheckInStore) Delete(_ context.Context, id domain.CheckInID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockCheckInStore) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// mockContactStore implements driven.ContactStore for testing.
type mockContactStore struct {
	mu       sync.RWMutex
	contacts map[domain.ContactID]domain.Contact
	saveErr  error
}

func newMockContactStore(contacts ...domain.Contact) *mockContactStore {
	m := &mockContactStore{contacts: make(map[domain.ContactID]domain.Contact)}
	for _, c := range contacts {
		m.contacts[c.ID] = c
	}
	return m
}

func (m *mockContactStore) Save(_ context.Context, contact domain.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.contacts[contact.ID] = contact
	return nil
}

func (m *mockContactStore) Get(_ context.Context, id domain.ContactID) (*domain.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.contacts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m *mockContactStore) List(_ context.Context) ([]domain.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockContactStore) Delete(_ context.Context, id domain.ContactID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.contacts, id)
	return nil
}

func (m *mockContactStore) Search(_ context.Context, query string) ([]domain.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Contact
	for _, c := range m.contacts {
		if c.Matches(query) {
			out = append(out, c)
		}
	}
	return out, nil
}

// mockCategoryStore implements driven.CategoryStore for testing.
type mockCategoryStore struct {
	mu         sync.RWMutex
	categories map[domain.CategoryID]domain.Category
}

func newMockCategoryStore(categories ...domain.Category) *mockCategoryStore {
	m := &mockCategoryStore{categories: make(map[domain.CategoryID]domain.Category)}
	for _, c := range categories {
		m.categories[c.ID] = c
	}
	return m
}

func (m *mockCategoryStore) Save(_ context.Context, category domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryStore) Get(_ context.Context, id domain.CategoryID) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m *mockCategoryStore) List(_ context.Context) ([]domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCategoryStore) Delete(_ context.Context, id domain.CategoryID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	return nil
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Lookup(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) Int(key string) (int, bool) {
	v, ok := m.values[key].(int)
	return v, ok
}

func (m *mockConfigStore) Bool(key string) (bool, bool) {
	v, ok := m.values[key].(bool)
	return v, ok
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

// mockNotifier implements driven.Notifier for testing.
type mockNotifier struct {
	mu        sync.Mutex
	reminders []domain.Reminder
	failFor   string // contact name that triggers an error
	err       error
}

func (m *mockNotifier) Notify(_ context.Context, reminder domain.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil && strings.EqualFold(reminder.ContactName, m.failFor) {
		return m.err
	}
	m.reminders = append(m.reminders, reminder)
	return nil
}

func (m *mockNotifier) sent() []domain.Reminder {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Reminder(nil), m.reminders...)
}

// Ensure mocks implement interfaces
var (
	_ driven.CheckInStore  = (*mockCheckInStore)(nil)
	_ driven.ContactStore  = (*mockContactStore)(nil)
	_ driven.CategoryStore = (*mockCategoryStore)(nil)
	_ driven.ConfigStore   = (*mockConfigStore)(nil)
	_ driven.Notifier      = (*mockNotifier)(nil)
)

// --- Fixtures ---

var (
	weekly  = domain.CheckInFrequency{Value: 1, Unit: domain.UnitWeeks}
	monthly = domain.CheckInFrequency{Value: 1, Unit: domain.UnitMonths}
)

func testCategory(id string, freq domain.CheckInFrequency) domain.Category {
	return domain.Category{ID: domain.CategoryID(id), Name: "cat-" + id, Frequency: freq}
}

func testContact(id, name string, category domain.CategoryID) domain.Contact {
	return domain.Contact{ID: domain.ContactID(id), Name: name, CategoryID: category}
}

func mustScheduled(t time.Time) domain.ScheduledDate {
	d, err := domain.NewScheduledDate(t)
	if err != nil {
		panic(err)
	}
	return d
}

func mustCompleted(t time.Time) domain.CompletionDate {
	d, err := domain.NewCompletionDate(t)
	if err != nil {
		panic(err)
	}
	return d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
