package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func mustScheduled(t *testing.T, tm time.Time) ScheduledDate {
	t.Helper()
	d, err := NewScheduledDate(tm)
	require.NoError(t, err)
	return d
}

func mustCompleted(t *testing.T, tm time.Time) CompletionDate {
	t.Helper()
	d, err := NewCompletionDate(tm)
	require.NoError(t, err)
	return d
}

func TestDeriveStatus(t *testing.T) {
	past := mustScheduled(t, testNow.Add(-time.Hour))
	future := mustScheduled(t, testNow.Add(time.Hour))
	done := mustCompleted(t, testNow)

	assert.Equal(t, StatusOverdue, DeriveStatus(past, CompletionDate{}, testNow))
	assert.Equal(t, StatusScheduled, DeriveStatus(future, CompletionDate{}, testNow))
	assert.Equal(t, StatusScheduled, DeriveStatus(mustScheduled(t, testNow), CompletionDate{}, testNow))
	assert.Equal(t, StatusCompleted, DeriveStatus(past, done, testNow))
	assert.Equal(t, StatusCompleted, DeriveStatus(future, done, testNow))
}

func TestNewCheckIn_StatusFixedAtConstruction(t *testing.T) {
	rec := CheckInRecord{
		ID:            "ci-1",
		ContactID:     "c-1",
		ScheduledDate: mustScheduled(t, testNow.Add(time.Hour)),
	}

	checkIn := NewCheckIn(rec, testNow)
	assert.Equal(t, StatusScheduled, checkIn.Status())

	// A later clock does not change an existing value...
	later := testNow.Add(2 * time.Hour)
	assert.Equal(t, StatusScheduled, checkIn.Status())

	// ...rebuilding from the record does.
	rebuilt := RestoreCheckIn(checkIn.Record(), later)
	assert.Equal(t, StatusOverdue, rebuilt.Status())
	assert.Equal(t, checkIn.ID(), rebuilt.ID())
}

func TestCheckIn_Accessors(t *testing.T) {
	rec := CheckInRecord{
		ID:             "ci-1",
		ContactID:      "c-1",
		ScheduledDate:  mustScheduled(t, testNow),
		CompletionDate: mustCompleted(t, testNow.Add(time.Minute)),
		Notes:          "called",
	}
	checkIn := NewCheckIn(rec, testNow)

	assert.Equal(t, CheckInID("ci-1"), checkIn.ID())
	assert.Equal(t, ContactID("c-1"), checkIn.ContactID())
	assert.Equal(t, rec.ScheduledDate, checkIn.ScheduledDate())
	assert.Equal(t, rec.CompletionDate, checkIn.CompletionDate())
	assert.Equal(t, CheckInNotes("called"), checkIn.Notes())
	assert.True(t, checkIn.IsCompleted())
	assert.Equal(t, rec, checkIn.Record())
}

func TestCheckIn_WithCompletion(t *testing.T) {
	original := NewCheckIn(CheckInRecord{
		ID:            "ci-1",
		ContactID:     "c-1",
		ScheduledDate: mustScheduled(t, testNow.Add(-24*time.Hour)),
	}, testNow)
	require.Equal(t, StatusOverdue, original.Status())

	completed := original.WithCompletion(mustCompleted(t, testNow), "had coffee", testNow)

	assert.Equal(t, StatusCompleted, completed.Status())
	assert.Equal(t, original.ID(), completed.ID())
	assert.Equal(t, original.ScheduledDate(), completed.ScheduledDate())
	assert.Equal(t, CheckInNotes("had coffee"), completed.Notes())

	// The original value is untouched.
	assert.Equal(t, StatusOverdue, original.Status())
	assert.False(t, original.IsCompleted())
}

func TestCheckIn_WithScheduledDate(t *testing.T) {
	t.Run("overdue becomes scheduled", func(t *testing.T) {
		original := NewCheckIn(CheckInRecord{
			ID:            "ci-1",
			ContactID:     "c-1",
			ScheduledDate: mustScheduled(t, testNow.Add(-time.Hour)),
			Notes:         "bring book",
		}, testNow)

		moved := original.WithScheduledDate(mustScheduled(t, testNow.Add(48*time.Hour)), testNow)

		assert.Equal(t, StatusScheduled, moved.Status())
		assert.Equal(t, original.Notes(), moved.Notes())
		assert.Equal(t, original.CompletionDate(), moved.CompletionDate())
		assert.Equal(t, original.ContactID(), moved.ContactID())
	})

	t.Run("completed stays completed", func(t *testing.T) {
		original := NewCheckIn(CheckInRecord{
			ID:             "ci-2",
			ContactID:      "c-1",
			ScheduledDate:  mustScheduled(t, testNow.Add(-time.Hour)),
			CompletionDate: mustCompleted(t, testNow.Add(-time.Minute)),
		}, testNow)

		moved := original.WithScheduledDate(mustScheduled(t, testNow.Add(48*time.Hour)), testNow)

		assert.Equal(t, StatusCompleted, moved.Status())
		assert.Equal(t, original.CompletionDate(), moved.CompletionDate())
	})
}

func TestSortByScheduledDate(t *testing.T) {
	mk := func(id string, offset time.Duration) CheckIn {
		return NewCheckIn(CheckInRecord{
			ID:            CheckInID(id),
			ContactID:     "c-1",
			ScheduledDate: mustScheduled(t, testNow.Add(offset)),
		}, testNow)
	}
	checkIns := []CheckIn{mk("c", 2*time.Hour), mk("b", time.Hour), mk("a", time.Hour), mk("d", -time.Hour)}

	SortByScheduledDate(checkIns)

	ids := make([]CheckInID, len(checkIns))
	for i := range checkIns {
		ids[i] = checkIns[i].ID()
	}
	assert.Equal(t, []CheckInID{"d", "a", "b", "c"}, ids)
}

func TestCheckInStatus_IsValid(t *testing.T) {
	assert.True(t, StatusScheduled.IsValid())
	assert.True(t, StatusOverdue.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, CheckInStatus("pending").IsValid())
}
