package domain

import (
	"strings"
	"time"
)

// Contact is a person the user keeps in touch with.
type Contact struct {
	// ID is the unique identifier for the contact.
	ID ContactID

	// Name is the display name. Required.
	Name string

	// Email is an optional email address.
	Email string

	// Phone is an optional phone number.
	Phone string

	// Notes is optional free text about the contact.
	Notes string

	// CategoryID links to the contact's Category. Empty means uncategorized.
	CategoryID CategoryID

	// Timezone is an IANA zone name. Stored for display only; date
	// arithmetic does not apply it.
	Timezone string

	// CreatedAt is when the contact was created.
	CreatedAt time.Time

	// UpdatedAt is when the contact was last updated.
	UpdatedAt time.Time
}

// Validate checks the fields that must hold for a contact to be stored.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("contact name", "must not be empty")
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return invalid("timezone", err.Error())
		}
	}
	return nil
}

// IsCategorized reports whether the contact has a category.
func (c *Contact) IsCategorized() bool {
	return !c.CategoryID.IsZero()
}

// Matches reports whether query occurs, case-insensitively, in the
// contact's name, email, phone or notes. An empty query matches everything.
func (c *Contact) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{c.Name, c.Email, c.Phone, c.Notes} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Category groups contacts that share a check-in cadence.
type Category struct {
	// ID is the unique identifier for the category.
	ID CategoryID

	// Name is the display name. Required.
	Name string

	// Frequency is how often contacts in this category are checked in on.
	Frequency CheckInFrequency

	// Color is an optional display colour (e.g. "#7C3AED").
	Color string

	// CreatedAt is when the category was created.
	CreatedAt time.Time

	// UpdatedAt is when the category was last updated.
	UpdatedAt time.Time
}

// Validate checks the fields that must hold for a category to be stored.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("category name", "must not be empty")
	}
	if _, err := NewCheckInFrequency(c.Frequency.Value, c.Frequency.Unit); err != nil {
		return err
	}
	return nil
}

// DefaultCategories returns the categories seeded into an empty store.
// IDs are left empty for the caller to assign.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Family", Frequency: CheckInFrequency{Value: 1, Unit: UnitMonths}, Color: "#F38BA8"},
		{Name: "Close Friends", Frequency: CheckInFrequency{Value: 2, Unit: UnitWeeks}, Color: "#7C3AED"},
		{Name: "Friends", Frequency: CheckInFrequency{Value: 1, Unit: UnitMonths}, Color: "#06B6D4"},
		{Name: "Acquaintances", Frequency: CheckInFrequency{Value: 3, Unit: UnitMonths}, Color: "#A6E3A1"},
	}
}
