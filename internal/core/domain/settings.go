package domain

import (
	"fmt"
	"time"
)

// ReminderSettings controls the background reminder task.
type ReminderSettings struct {
	// Enabled turns reminders on or off.
	Enabled bool

	// Interval is how often reminders are collected and sent.
	Interval time.Duration

	// UpcomingDays is how far ahead, in days, scheduled check-ins are
	// included in reminders. Zero means overdue check-ins only.
	UpcomingDays int
}

// CheckInSettings holds check-in query defaults.
type CheckInSettings struct {
	// UpcomingDays is the default window for upcoming check-ins.
	UpcomingDays int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Reminders holds reminder task settings.
	Reminders ReminderSettings

	// CheckIns holds check-in query settings.
	CheckIns CheckInSettings
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Reminders: ReminderSettings{
			Enabled:      true,
			Interval:     time.Hour,
			UpcomingDays: 1,
		},
		CheckIns: CheckInSettings{
			UpcomingDays: DefaultUpcomingDays,
		},
	}
}

// Validate checks the settings are usable.
func (s *AppSettings) Validate() error {
	if s.Reminders.Interval < time.Minute {
		return invalid("reminders.interval_minutes", "must be at least 1")
	}
	if s.Reminders.UpcomingDays < 0 {
		return invalid("reminders.upcoming_days", fmt.Sprintf("%d is negative", s.Reminders.UpcomingDays))
	}
	if s.CheckIns.UpcomingDays < 1 {
		return invalid("checkins.upcoming_days", "must be at least 1")
	}
	return nil
}
