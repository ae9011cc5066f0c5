package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// Ensure DashboardService implements the interface.
var _ driving.DashboardService = (*DashboardService)(nil)

// DashboardService aggregates counts for the dashboard.
type DashboardService struct {
	checkIns driven.CheckInStore
	contacts driven.ContactStore
	clock    domain.Clock
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(checkIns driven.CheckInStore, contacts driven.ContactStore, clock domain.Clock) *DashboardService {
	return &DashboardService{
		checkIns: checkIns,
		contacts: contacts,
		clock:    clock,
	}
}

// Summary counts overdue and upcoming check-ins and contacts per category.
// The upcoming window is always domain.DefaultUpcomingDays.
func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	if s.checkIns == nil || s.contacts == nil {
		return nil, domain.ErrNotImplemented
	}

	overdue, err := s.checkIns.ListByStatus(ctx, domain.StatusOverdue)
	if err != nil {
		return nil, fmt.Errorf("list overdue check-ins: %w", err)
	}

	now := s.clock.Now()
	window, err := s.checkIns.ListByDateRange(ctx, now, now.AddDate(0, 0, domain.DefaultUpcomingDays))
	if err != nil {
		return nil, fmt.Errorf("list check-ins by date: %w", err)
	}
	upcoming := 0
	for _, c := range window {
		if c.Status() == domain.StatusScheduled {
			upcoming++
		}
	}

	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	byCategory := make(map[string]int)
	for i := range contacts {
		key := domain.UncategorizedKey
		if contacts[i].IsCategorized() {
			key = contacts[i].CategoryID.String()
		}
		byCategory[key]++
	}

	return &domain.DashboardSummary{
		OverdueCount:       len(overdue),
		UpcomingCount:      upcoming,
		TotalContacts:      len(contacts),
		ContactsByCategory: byCategory,
	}, nil
}
