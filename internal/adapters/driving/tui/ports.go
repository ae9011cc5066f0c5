// Package tui provides an interactive terminal user interface for kith.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// CheckIns lists and completes check-ins. Required.
	CheckIns driving.CheckInService

	// Contacts lists contacts and resolves names. Required.
	Contacts driving.ContactService

	// Categories supplies category names and colours.
	Categories driving.CategoryService

	// Dashboard supplies summary counts.
	Dashboard driving.DashboardService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(checkIns driving.CheckInService, contacts driving.ContactService) *Ports {
	return &Ports{
		CheckIns: checkIns,
		Contacts: contacts,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.CheckIns == nil {
		return ErrMissingCheckInService
	}
	if p.Contacts == nil {
		return ErrMissingContactService
	}
	return nil
}
