package domain

import "time"

// CheckInStatus is the derived state of a CheckIn.
type CheckInStatus string

// Check-in statuses.
const (
	StatusScheduled CheckInStatus = "scheduled"
	StatusOverdue   CheckInStatus = "overdue"
	StatusCompleted CheckInStatus = "completed"
)

// IsValid returns true if the status is recognised.
func (s CheckInStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusOverdue, StatusCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s CheckInStatus) String() string {
	return string(s)
}

// DeriveStatus computes a status from the two dates at instant now.
// Completion wins over the schedule.
func DeriveStatus(scheduled ScheduledDate, completed CompletionDate, now time.Time) CheckInStatus {
	if completed.IsSet() {
		return StatusCompleted
	}
	if scheduled.Time().Before(now) {
		return StatusOverdue
	}
	return StatusScheduled
}

// CheckInRecord holds the persisted fields of a check-in.
// Status is deliberately absent.
type CheckInRecord struct {
	ID             CheckInID
	ContactID      ContactID
	ScheduledDate  ScheduledDate
	CompletionDate CompletionDate
	Notes          CheckInNotes
}

// CheckIn is an immutable check-in whose status was derived when it was built.
// Rebuild it from its record to observe a later status.
type CheckIn struct {
	rec    CheckInRecord
	status CheckInStatus
}

// NewCheckIn builds a check-in from rec, deriving its status at now.
func NewCheckIn(rec CheckInRecord, now time.Time) CheckIn {
	return CheckIn{
		rec:    rec,
		status: DeriveStatus(rec.ScheduledDate, rec.CompletionDate, now),
	}
}

// RestoreCheckIn rebuilds a check-in loaded from storage.
func RestoreCheckIn(rec CheckInRecord, now time.Time) CheckIn {
	return NewCheckIn(rec, now)
}

// ID returns the check-in identifier.
func (c CheckIn) ID() CheckInID { return c.rec.ID }

// ContactID returns the owning contact.
func (c CheckIn) ContactID() ContactID { return c.rec.ContactID }

// ScheduledDate returns when the check-in is due.
func (c CheckIn) ScheduledDate() ScheduledDate { return c.rec.ScheduledDate }

// CompletionDate returns when the check-in was completed, if ever.
func (c CheckIn) CompletionDate() CompletionDate { return c.rec.CompletionDate }

// Notes returns the check-in notes.
func (c CheckIn) Notes() CheckInNotes { return c.rec.Notes }

// Status returns the status derived at construction.
func (c CheckIn) Status() CheckInStatus { return c.status }

// IsCompleted reports whether the check-in has a completion date.
func (c CheckIn) IsCompleted() bool { return c.rec.CompletionDate.IsSet() }

// Record returns the persistable fields.
func (c CheckIn) Record() CheckInRecord { return c.rec }

// WithCompletion returns a completed copy keeping the id and scheduled date.
func (c CheckIn) WithCompletion(date CompletionDate, notes CheckInNotes, now time.Time) CheckIn {
	rec := c.rec
	rec.CompletionDate = date
	rec.Notes = notes
	return NewCheckIn(rec, now)
}

// WithScheduledDate returns a copy with only the scheduled date replaced.
func (c CheckIn) WithScheduledDate(date ScheduledDate, now time.Time) CheckIn {
	rec := c.rec
	rec.ScheduledDate = date
	return NewCheckIn(rec, now)
}
