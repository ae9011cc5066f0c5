// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewDashboard shows counts plus overdue and upcoming check-ins.
	ViewDashboard
	// ViewContacts lists contacts.
	ViewContacts
	// ViewHistory lists the check-ins of one contact.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewDashboard:
		return "dashboard"
	case ViewContacts:
		return "contacts"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// DashboardLoaded carries the summary and the check-ins needing attention.
type DashboardLoaded struct {
	Summary  *domain.DashboardSummary
	Overdue  []domain.CheckIn
	Upcoming []domain.CheckIn
	Names    map[domain.ContactID]string
	Err      error
}

// ContactsLoaded carries the list of contacts.
type ContactsLoaded struct {
	Contacts   []domain.Contact
	Categories map[domain.CategoryID]string
	Err        error
}

// ContactSelected signals a contact was chosen for the history view.
type ContactSelected struct {
	Contact domain.Contact
}

// HistoryLoaded carries every check-in of a contact.
type HistoryLoaded struct {
	ContactID domain.ContactID
	CheckIns  []domain.CheckIn
	Err       error
}

// CompleteRequested asks the app to complete a check-in now.
type CompleteRequested struct {
	CheckInID domain.CheckInID
	Notes     string
}

// CheckInCompleted carries the completed check-in and its follow-up.
type CheckInCompleted struct {
	Completed domain.CheckIn
	Next      domain.CheckIn
	Err       error
}
