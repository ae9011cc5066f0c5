package driving

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// DashboardService aggregates check-in and contact counts.
type DashboardService interface {
	// Summary computes the dashboard summary at the current time.
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}
