package domain

import (
	"fmt"
	"time"
)

// SnapshotVersion is the snapshot format written by this build.
const SnapshotVersion = 1

// Snapshot is the export/import shape of all user data.
type Snapshot struct {
	Version    int                `json:"version"`
	ExportedAt time.Time          `json:"exportedAt"`
	Contacts   []SnapshotContact  `json:"contacts"`
	Categories []SnapshotCategory `json:"categories"`
	CheckIns   []SnapshotCheckIn  `json:"checkIns"`
}

// SnapshotContact is the serialised form of a Contact.
type SnapshotContact struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CategoryID *string   `json:"categoryId"`
	Timezone   string    `json:"timezone,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SnapshotCategory is the serialised form of a Category.
type SnapshotCategory struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Frequency SnapshotFrequency `json:"frequency"`
	Color     string            `json:"color,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// SnapshotFrequency is the serialised form of a CheckInFrequency.
type SnapshotFrequency struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// SnapshotCheckIn is the serialised form of a CheckInRecord.
// A null completionDate or notes means absent.
type SnapshotCheckIn struct {
	ID             string     `json:"id"`
	ContactID      string     `json:"contactId"`
	ScheduledDate  time.Time  `json:"scheduledDate"`
	CompletionDate *time.Time `json:"completionDate"`
	Notes          *string    `json:"notes"`
}

// ImportResult reports how many records an import wrote.
type ImportResult struct {
	Contacts   int
	Categories int
	CheckIns   int
}

// Validate checks the snapshot can be read by this build.
func (s *Snapshot) Validate() error {
	if s.Version < 1 {
		return invalid("snapshot version", fmt.Sprintf("%d", s.Version))
	}
	if s.Version > SnapshotVersion {
		return fmt.Errorf("version %d (this build reads up to %d): %w", s.Version, SnapshotVersion, ErrUnsupportedVersion)
	}
	return nil
}

// SnapshotFromContact converts a contact for export.
func SnapshotFromContact(c Contact) SnapshotContact {
	out := SnapshotContact{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		Timezone:  c.Timezone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.IsCategorized() {
		id := c.CategoryID.String()
		out.CategoryID = &id
	}
	return out
}

// Contact converts the snapshot form back into a Contact.
func (s SnapshotContact) Contact() (Contact, error) {
	id, err := ParseContactID(s.ID)
	if err != nil {
		return Contact{}, err
	}
	c := Contact{
		ID:        id,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Notes:     s.Notes,
		Timezone:  s.Timezone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.CategoryID != nil && *s.CategoryID != "" {
		c.CategoryID = CategoryID(*s.CategoryID)
	}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	return c, nil
}

// SnapshotFromCategory converts a category for export.
func SnapshotFromCategory(c Category) SnapshotCategory {
	return SnapshotCategory{
		ID:        c.ID.String(),
		Name:      c.Name,
		Frequency: SnapshotFrequency{Value: c.Frequency.Value, Unit: c.Frequency.Unit.String()},
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// Category converts the snapshot form back into a Category.
func (s SnapshotCategory) Category() (Category, error) {
	id, err := ParseCategoryID(s.ID)
	if err != nil {
		return Category{}, err
	}
	freq, err := NewCheckInFrequency(s.Frequency.Value, FrequencyUnit(s.Frequency.Unit))
	if err != nil {
		return Category{}, err
	}
	c := Category{
		ID:        id,
		Name:      s.Name,
		Frequency: freq,
		Color:     s.Color,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	return c, nil
}

// SnapshotFromCheckIn converts a check-in record for export.
func SnapshotFromCheckIn(rec CheckInRecord) SnapshotCheckIn {
	out := SnapshotCheckIn{
		ID:            rec.ID.String(),
		ContactID:     rec.ContactID.String(),
		ScheduledDate: rec.ScheduledDate.Time(),
	}
	if rec.CompletionDate.IsSet() {
		t := rec.CompletionDate.Time()
		out.CompletionDate = &t
	}
	if !rec.Notes.IsEmpty() {
		n := rec.Notes.String()
		out.Notes = &n
	}
	return out
}

// Record converts the snapshot form back into a CheckInRecord.
func (s SnapshotCheckIn) Record() (CheckInRecord, error) {
	id, err := ParseCheckInID(s.ID)
	if err != nil {
		return CheckInRecord{}, err
	}
	contactID, err := ParseContactID(s.ContactID)
	if err != nil {
		return CheckInRecord{}, err
	}
	scheduled, err := NewScheduledDate(s.ScheduledDate)
	if err != nil {
		return CheckInRecord{}, err
	}
	rec := CheckInRecord{ID: id, ContactID: contactID, ScheduledDate: scheduled}
	if s.CompletionDate != nil {
		if rec.CompletionDate, err = NewCompletionDate(*s.CompletionDate); err != nil {
			return CheckInRecord{}, err
		}
	}
	if s.Notes != nil {
		if rec.Notes, err = NewCheckInNotes(*s.Notes); err != nil {
			return CheckInRecord{}, err
		}
	}
	return rec, nil
}
