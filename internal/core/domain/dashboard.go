package domain

// DefaultUpcomingDays is the look-ahead window for upcoming check-ins.
const DefaultUpcomingDays = 7

// DashboardSummary aggregates the state of all check-ins and contacts.
type DashboardSummary struct {
	// OverdueCount is the number of uncompleted check-ins already due.
	OverdueCount int

	// UpcomingCount is the number of scheduled check-ins due within
	// DefaultUpcomingDays (inclusive).
	UpcomingCount int

	// TotalContacts is the number of contacts.
	TotalContacts int

	// ContactsByCategory counts contacts per category id. Contacts without a
	// category are counted under UncategorizedKey.
	ContactsByCategory map[string]int
}

// Reminder is a single notification about a check-in.
type Reminder struct {
	// CheckIn is the check-in the reminder is about.
	CheckIn CheckIn

	// ContactName is the display name of the contact, or the contact id
	// when the contact could not be resolved.
	ContactName string
}
