package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

func TestCheckInSchedule(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	out, err := runCommand(t, "checkin", "schedule", "alice")

	require.NoError(t, err)
	assert.Contains(t, out, "Scheduled check-in for 2026-02-24")
}

func TestCheckInSchedule_FromBase(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	out, err := runCommand(t, "ci", "schedule", "alice", "--base", "2026-03-01")

	require.NoError(t, err)
	assert.Contains(t, out, "Scheduled check-in for 2026-03-15")
}

func TestCheckInSchedule_Uncategorized(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	_, err := runCommand(t, "checkin", "schedule", "bob")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "needs a category")
}

func TestCheckInAdd(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	out, err := runCommand(t, "checkin", "add", "bob", "--date", "2026-03-01", "--notes", "birthday")

	require.NoError(t, err)
	assert.Contains(t, out, "Added check-in for 2026-03-01 (scheduled)")
	checkIns, err := env.checkIns.ListByContact(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, checkIns, 1)
	assert.Equal(t, domain.CheckInNotes("birthday"), checkIns[0].Notes())
}

func TestCheckInAdd_PastDateIsOverdue(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	out, err := runCommand(t, "checkin", "add", "bob", "-d", "2026-01-01")

	require.NoError(t, err)
	assert.Contains(t, out, "(overdue)")
}

func TestCheckInAdd_BadDate(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	_, err := runCommand(t, "checkin", "add", "bob", "-d", "next tuesday")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckInComplete_DefaultsToNow(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)
	env.seedCheckIn(t, "ci-1", "alice", time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), time.Time{}, "")

	out, err := runCommand(t, "checkin", "complete", "ci-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Completed check-in ci-1")
	// The next check-in counts from the scheduled date, not the completion.
	assert.Contains(t, out, "Next check-in: 2026-02-15")

	completed, err := env.checkIns.Get(context.Background(), "ci-1")
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted())
	assert.True(t, completed.CompletionDate().Time().Equal(testNow))

	history, err := env.checkIns.ListByContact(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestCheckInComplete_WithDateAndNotes(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)
	env.seedCheckIn(t, "ci-1", "alice", time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), time.Time{}, "")

	_, err := runCommand(t, "checkin", "complete", "ci-1", "--date", "2026-02-05", "--notes", "  coffee  ")

	require.NoError(t, err)
	completed, err := env.checkIns.Get(context.Background(), "ci-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CheckInNotes("coffee"), completed.Notes())
	assert.Equal(t, 5, completed.CompletionDate().Time().Day())
}

func TestCheckInComplete_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := runCommand(t, "checkin", "complete", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckInReschedule(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)
	env.seedCheckIn(t, "ci-1", "alice", time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), time.Time{}, "")

	out, err := runCommand(t, "checkin", "reschedule", "ci-1", "2026-03-01")

	require.NoError(t, err)
	assert.Contains(t, out, "Rescheduled check-in ci-1 to 2026-03-01 (scheduled)")
}

func TestCheckInOverdue(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	out, err := runCommand(t, "checkin", "overdue")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing overdue.")

	env.seedCheckIn(t, "ci-late", "alice", testNow.AddDate(0, 0, -3), time.Time{}, "")
	env.seedCheckIn(t, "ci-done", "alice", testNow.AddDate(0, 0, -30), testNow.AddDate(0, 0, -29), "")

	out, err = runCommand(t, "checkin", "overdue")
	require.NoError(t, err)
	assert.Contains(t, out, "Overdue check-ins (1)")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "ci-late")
}

func TestCheckInUpcoming(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)
	env.seedCheckIn(t, "ci-soon", "alice", testNow.AddDate(0, 0, 2), time.Time{}, "")
	env.seedCheckIn(t, "ci-later", "bob", testNow.AddDate(0, 0, 5), time.Time{}, "")

	out, err := runCommand(t, "checkin", "upcoming", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Upcoming check-ins (1)")
	assert.NotContains(t, out, "ci-later")

	// Without --days the configured default of 7 applies.
	out, err = runCommand(t, "checkin", "upcoming")
	require.NoError(t, err)
	assert.Contains(t, out, "Upcoming check-ins (2)")
}

func TestCheckInUpcoming_None(t *testing.T) {
	setupTestServices(t)

	out, err := runCommand(t, "checkin", "upcoming")

	require.NoError(t, err)
	assert.Contains(t, out, "No upcoming check-ins.")
}

func TestCheckInUpcoming_NegativeDays(t *testing.T) {
	setupTestServices(t)

	_, err := runCommand(t, "checkin", "upcoming", "--days", "-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckInToday(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	out, err := runCommand(t, "checkin", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing scheduled for today.")

	env.seedCheckIn(t, "ci-today", "alice", testNow.Add(2*time.Hour), time.Time{}, "")
	env.seedCheckIn(t, "ci-tomorrow", "bob", testNow.AddDate(0, 0, 1), time.Time{}, "")

	out, err = runCommand(t, "checkin", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "Today (1)")
	assert.Contains(t, out, "ci-today")
}

func TestCheckInHistory(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)
	env.seedCheckIn(t, "ci-done", "alice", time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 21, 12, 0, 0, 0, time.UTC), "walk in the park")
	env.seedCheckIn(t, "ci-open", "alice", time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC), time.Time{}, "")

	out, err := runCommand(t, "checkin", "history", "alice")

	require.NoError(t, err)
	assert.Contains(t, out, "History (2)")
	assert.Contains(t, out, "completed 2026-01-21: walk in the park")
	assert.Less(t, strings.Index(out, "ci-done"), strings.Index(out, "ci-open"))
}

func TestCheckInHistory_Empty(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	out, err := runCommand(t, "checkin", "history", "bob")

	require.NoError(t, err)
	assert.Contains(t, out, "No check-ins for this contact.")
}

func TestCheckIn_RejectsMalformedIDs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"schedule blank contact", []string{"checkin", "schedule", "  "}},
		{"add spaced contact", []string{"checkin", "add", "al ice", "--date", "2026-03-01"}},
		{"complete blank check-in", []string{"checkin", "complete", ""}},
		{"reschedule spaced check-in", []string{"checkin", "reschedule", "ci 1", "2026-03-01"}},
		{"history blank contact", []string{"checkin", "history", "\t"}},
		{"contact show spaced", []string{"contact", "show", "al ice"}},
		{"category remove blank", []string{"category", "remove", " "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServices(t)
			env.seedFriends(t)

			_, err := runCommand(t, tt.args...)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCheckIn_TrimsIDs(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)
	env.seedCheckIn(t, "ci-1", "alice", time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), time.Time{}, "")

	out, err := runCommand(t, "checkin", "complete", " ci-1 ")

	require.NoError(t, err)
	assert.Contains(t, out, "Completed check-in ci-1")
}

func TestCheckIn_DateFlagsAreIndependent(t *testing.T) {
	setupTestServices(t)
	t.Cleanup(func() { resetFlags(rootCmd) })

	require.NoError(t, checkInAddCmd.Flags().Set("date", "2026-03-01"))
	require.NoError(t, checkInAddCmd.Flags().Set("notes", "birthday"))

	assert.Empty(t, checkInCompleteCmd.Flags().Lookup("date").Value.String())
	assert.Empty(t, checkInCompleteCmd.Flags().Lookup("notes").Value.String())
	assert.Empty(t, completeDate)
	assert.Equal(t, "2026-03-01", addDate)
}

func TestCheckInAdd_OutOfRangeDate(t *testing.T) {
	env := setupTestServices(t)
	env.seedFriends(t)

	_, err := runCommand(t, "checkin", "add", "bob", "--date", "2300-01-01")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	checkIns, err := env.checkIns.ListByContact(context.Background(), "bob")
	require.NoError(t, err)
	assert.Empty(t, checkIns)
}
