package domain

import (
	"strings"

	"github.com/google/uuid"
)

// CheckInID identifies a CheckIn.
type CheckInID string

// ContactID identifies a Contact.
type ContactID string

// CategoryID identifies a Category. The empty CategoryID means "uncategorized".
type CategoryID string

// UncategorizedKey is the dashboard bucket for contacts without a category.
const UncategorizedKey = "uncategorized"

// NewCheckInID mints a fresh check-in identifier.
func NewCheckInID() CheckInID { return CheckInID(uuid.NewString()) }

// NewContactID mints a fresh contact identifier.
func NewContactID() ContactID { return ContactID(uuid.NewString()) }

// NewCategoryID mints a fresh category identifier.
func NewCategoryID() CategoryID { return CategoryID(uuid.NewString()) }

// ParseCheckInID validates raw input as a check-in identifier.
func ParseCheckInID(s string) (CheckInID, error) {
	v, err := parseID("check-in id", s)
	return CheckInID(v), err
}

// ParseContactID validates raw input as a contact identifier.
func ParseContactID(s string) (ContactID, error) {
	v, err := parseID("contact id", s)
	return ContactID(v), err
}

// ParseCategoryID validates raw input as a category identifier.
func ParseCategoryID(s string) (CategoryID, error) {
	v, err := parseID("category id", s)
	return CategoryID(v), err
}

func parseID(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid(field, "must not be empty")
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return "", invalid(field, "must not contain whitespace")
	}
	return s, nil
}

// String returns the string representation.
func (id CheckInID) String() string { return string(id) }

// String returns the string representation.
func (id ContactID) String() string { return string(id) }

// String returns the string representation.
func (id CategoryID) String() string { return string(id) }

// IsZero reports whether the contact is uncategorized.
func (id CategoryID) IsZero() bool { return id == "" }
