package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FrequencyUnit is the calendar unit of a CheckInFrequency.
type FrequencyUnit string

// Available frequency units.
const (
	UnitDays   FrequencyUnit = "days"
	UnitWeeks  FrequencyUnit = "weeks"
	UnitMonths FrequencyUnit = "months"
)

// MaxFrequencyValue bounds CheckInFrequency.Value.
const MaxFrequencyValue = 365

// IsValid returns true if the unit is recognised.
func (u FrequencyUnit) IsValid() bool {
	switch u {
	case UnitDays, UnitWeeks, UnitMonths:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (u FrequencyUnit) String() string {
	return string(u)
}

// singular returns the unit name without the trailing "s".
func (u FrequencyUnit) singular() string {
	return strings.TrimSuffix(string(u), "s")
}

// CheckInFrequency is the recurrence cadence of a Category.
type CheckInFrequency struct {
	// Value is the number of units between check-ins. Always >= 1.
	Value int

	// Unit is the calendar unit.
	Unit FrequencyUnit
}

// NewCheckInFrequency validates value and unit.
func NewCheckInFrequency(value int, unit FrequencyUnit) (CheckInFrequency, error) {
	if !unit.IsValid() {
		return CheckInFrequency{}, invalid("frequency unit", fmt.Sprintf("%q is not one of days, weeks, months", unit))
	}
	if value < 1 {
		return CheckInFrequency{}, invalid("frequency value", "must be a positive integer")
	}
	if value > MaxFrequencyValue {
		return CheckInFrequency{}, invalid("frequency value", fmt.Sprintf("must be at most %d", MaxFrequencyValue))
	}
	return CheckInFrequency{Value: value, Unit: unit}, nil
}

// ParseCheckInFrequency parses inputs like "2 weeks", "1 month" or "every 3 days".
func ParseCheckInFrequency(s string) (CheckInFrequency, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) > 0 && fields[0] == "every" {
		fields = fields[1:]
	}

	var value int
	var unit string
	switch len(fields) {
	case 1:
		value, unit = 1, fields[0]
	case 2:
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return CheckInFrequency{}, invalid("frequency value", fmt.Sprintf("%q is not a number", fields[0]))
		}
		value, unit = n, fields[1]
	default:
		return CheckInFrequency{}, invalid("frequency", fmt.Sprintf("%q is not of the form \"<n> <unit>\"", s))
	}

	if !strings.HasSuffix(unit, "s") {
		unit += "s"
	}
	return NewCheckInFrequency(value, FrequencyUnit(unit))
}

// IsZero reports whether f was never set.
func (f CheckInFrequency) IsZero() bool {
	return f.Value == 0 && f.Unit == ""
}

// String renders the frequency for display, e.g. "every 2 weeks" or "every month".
func (f CheckInFrequency) String() string {
	if f.Value == 1 {
		return "every " + f.Unit.singular()
	}
	return fmt.Sprintf("every %d %s", f.Value, f.Unit)
}
