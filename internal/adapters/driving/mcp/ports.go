package mcp

import (
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// CheckIns schedules, completes and lists check-ins.
	CheckIns driving.CheckInService

	// Contacts resolves contact names and backs the contacts resource.
	Contacts driving.ContactService

	// Categories backs the categories resource.
	Categories driving.CategoryService

	// Dashboard backs the dashboard tool and resource.
	Dashboard driving.DashboardService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.CheckIns == nil {
		return ErrMissingCheckInService
	}
	return nil
}
