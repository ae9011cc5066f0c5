package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the calendar-day input format accepted alongside RFC 3339.
const DateLayout = "2006-01-02"

// MaxNotesLength is the longest CheckInNotes value accepted, in runes.
const MaxNotesLength = 2000

// Dates must fall in [MinDate, MaxDate). Stores keep instants as unix
// nanoseconds, which cannot represent years past 2262.
var (
	MinDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	MaxDate = time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

// Now returns the current time according to c.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// ScheduledDate is the date a check-in is due.
type ScheduledDate struct {
	t time.Time
}

// NewScheduledDate wraps t. The zero time and dates outside
// [MinDate, MaxDate) are rejected.
func NewScheduledDate(t time.Time) (ScheduledDate, error) {
	if err := checkDate("scheduled date", t); err != nil {
		return ScheduledDate{}, err
	}
	return ScheduledDate{t: t}, nil
}

// ParseScheduledDate parses RFC 3339 or YYYY-MM-DD (local midnight).
func ParseScheduledDate(s string) (ScheduledDate, error) {
	t, err := parseDate(s)
	if err != nil {
		return ScheduledDate{}, invalid("scheduled date", err.Error())
	}
	return NewScheduledDate(t)
}

// Time returns the underlying time.
func (d ScheduledDate) Time() time.Time { return d.t }

// IsZero reports whether d was never set.
func (d ScheduledDate) IsZero() bool { return d.t.IsZero() }

// String formats the date as RFC 3339.
func (d ScheduledDate) String() string { return d.t.Format(time.RFC3339) }

// CompletionDate is when a check-in was completed.
// The zero value means "not completed".
type CompletionDate struct {
	t time.Time
}

// NewCompletionDate wraps t. The zero time and dates outside
// [MinDate, MaxDate) are rejected; use the zero CompletionDate to express
// absence.
func NewCompletionDate(t time.Time) (CompletionDate, error) {
	if err := checkDate("completion date", t); err != nil {
		return CompletionDate{}, err
	}
	return CompletionDate{t: t}, nil
}

// ParseCompletionDate parses RFC 3339 or YYYY-MM-DD (local midnight).
func ParseCompletionDate(s string) (CompletionDate, error) {
	t, err := parseDate(s)
	if err != nil {
		return CompletionDate{}, invalid("completion date", err.Error())
	}
	return NewCompletionDate(t)
}

// IsSet reports whether a completion date is present.
func (d CompletionDate) IsSet() bool { return !d.t.IsZero() }

// Time returns the underlying time, or the zero time when absent.
func (d CompletionDate) Time() time.Time { return d.t }

// String formats the date as RFC 3339, or "" when absent.
func (d CompletionDate) String() string {
	if !d.IsSet() {
		return ""
	}
	return d.t.Format(time.RFC3339)
}

// CheckInNotes is optional free text attached to a check-in.
// The empty value means "no notes".
type CheckInNotes string

// NewCheckInNotes trims s and enforces MaxNotesLength.
func NewCheckInNotes(s string) (CheckInNotes, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNotesLength {
		return "", invalid("notes", "too long")
	}
	return CheckInNotes(s), nil
}

// IsEmpty reports whether there are no notes.
func (n CheckInNotes) IsEmpty() bool { return n == "" }

// String returns the string representation.
func (n CheckInNotes) String() string { return string(n) }

func checkDate(field string, t time.Time) error {
	switch {
	case t.IsZero():
		return invalid(field, "must be a valid date")
	case t.Before(MinDate), !t.Before(MaxDate):
		return invalid(field, fmt.Sprintf("must be between %d and %d", MinDate.Year(), MaxDate.Year()-1))
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
