package mcp

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// mockCheckInService is a mock implementation of driving.CheckInService.
type mockCheckInService struct {
	checkIns []domain.CheckIn
	result   *driving.CompleteResult
	moved    domain.CheckIn
	err      error

	lastDays       int
	lastContactID  domain.ContactID
	lastComplete   driving.CompleteInput
	lastReschedule driving.RescheduleInput
}

func (m *mockCheckInService) ScheduleInitialCheckIn(
	_ context.Context,
	_ driving.ScheduleInitialInput,
) (domain.CheckIn, error) {
	return domain.CheckIn{}, m.err
}

func (m *mockCheckInService) CreateManualCheckIn(
	_ context.Context,
	_ driving.CreateManualInput,
) (domain.CheckIn, error) {
	return domain.CheckIn{}, m.err
}

func (m *mockCheckInService) CompleteCheckIn(
	_ context.Context,
	input driving.CompleteInput,
) (*driving.CompleteResult, error) {
	m.lastComplete = input
	return m.result, m.err
}

func (m *mockCheckInService) RescheduleCheckIn(
	_ context.Context,
	input driving.RescheduleInput,
) (domain.CheckIn, error) {
	m.lastReschedule = input
	return m.moved, m.err
}

func (m *mockCheckInService) OverdueCheckIns(_ context.Context) ([]domain.CheckIn, error) {
	return m.checkIns, m.err
}

func (m *mockCheckInService) UpcomingCheckIns(_ context.Context, days int) ([]domain.CheckIn, error) {
	m.lastDays = days
	return m.checkIns, m.err
}

func (m *mockCheckInService) CheckInHistory(_ context.Context, id domain.ContactID) ([]domain.CheckIn, error) {
	m.lastContactID = id
	return m.checkIns, m.err
}

func (m *mockCheckInService) TodayCheckIns(_ context.Context) ([]domain.CheckIn, error) {
	return m.checkIns, m.err
}

func (m *mockCheckInService) Get(_ context.Context, _ domain.CheckInID) (*domain.CheckIn, error) {
	return nil, m.err
}

// mockContactService is a mock implementation of driving.ContactService.
type mockContactService struct {
	contacts []domain.Contact
	err      error
}

func (m *mockContactService) Create(_ context.Context, c domain.Contact) (*domain.Contact, error) {
	return &c, m.err
}

func (m *mockContactService) Update(_ context.Context, c domain.Contact) (*domain.Contact, error) {
	return &c, m.err
}

func (m *mockContactService) Get(_ context.Context, id domain.ContactID) (*domain.Contact, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.contacts {
		if m.contacts[i].ID == id {
			c := m.contacts[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockContactService) List(_ context.Context) ([]domain.Contact, error) {
	return m.contacts, m.err
}

func (m *mockContactService) Search(_ context.Context, _ string) ([]domain.Contact, error) {
	return m.contacts, m.err
}

func (m *mockContactService) Delete(_ context.Context, _ domain.ContactID) error {
	return m.err
}

// mockCategoryService is a mock implementation of driving.CategoryService.
type mockCategoryService struct {
	categories []domain.Category
	err        error
}

func (m *mockCategoryService) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	return &c, m.err
}

func (m *mockCategoryService) Update(_ context.Context, c domain.Category) (*domain.Category, error) {
	return &c, m.err
}

func (m *mockCategoryService) Get(_ context.Context, _ domain.CategoryID) (*domain.Category, error) {
	return nil, m.err
}

func (m *mockCategoryService) List(_ context.Context) ([]domain.Category, error) {
	return m.categories, m.err
}

func (m *mockCategoryService) Delete(_ context.Context, _ domain.CategoryID) error {
	return m.err
}

func (m *mockCategoryService) SeedDefaults(_ context.Context) ([]domain.Category, error) {
	return nil, m.err
}

// mockDashboardService is a mock implementation of driving.DashboardService.
type mockDashboardService struct {
	summary *domain.DashboardSummary
	err     error
}

func (m *mockDashboardService) Summary(_ context.Context) (*domain.DashboardSummary, error) {
	return m.summary, m.err
}
