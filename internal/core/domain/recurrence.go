package domain

import "time"

// NextCheckInDate returns the date one frequency step after base.
//
// Days and weeks add calendar days. Months add calendar months and clamp
// to the last day of the resulting month, so Jan 31 + 1 month is Feb 28
// (or 29). The time of day and location of base are kept.
//
// f is assumed valid; see NewCheckInFrequency.
func NextCheckInDate(base time.Time, f CheckInFrequency) time.Time {
	switch f.Unit {
	case UnitDays:
		return base.AddDate(0, 0, f.Value)
	case UnitWeeks:
		return base.AddDate(0, 0, 7*f.Value)
	case UnitMonths:
		return addMonthsClamped(base, f.Value)
	default:
		return base
	}
}

func addMonthsClamped(base time.Time, months int) time.Time {
	y, m, d := base.Date()
	hh, mm, ss := base.Clock()

	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, base.Location())
	if last := daysIn(target.Year(), target.Month(), base.Location()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, hh, mm, ss, base.Nanosecond(), base.Location())
}

// daysIn returns the number of days in month m of year y.
func daysIn(y int, m time.Month, loc *time.Location) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}
