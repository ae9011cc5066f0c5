package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kith-cli/internal/adapters/driven/notify"
	"github.com/custodia-labs/kith-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/services"
)

var testNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

// testEnv wires real services over in-memory stores with a fixed clock.
type testEnv struct {
	checkIns   *memory.CheckInStore
	contacts   *memory.ContactStore
	categories *memory.CategoryStore
	config     *memory.ConfigStore
	reminders  *bytes.Buffer
	services   *Services
}

func setupTestServices(t *testing.T) *testEnv {
	t.Helper()
	clock := domain.Clock(func() time.Time { return testNow })

	env := &testEnv{
		checkIns:   memory.NewCheckInStore(clock),
		contacts:   memory.NewContactStore(),
		categories: memory.NewCategoryStore(),
		config:     memory.NewConfigStore(),
		reminders:  new(bytes.Buffer),
	}

	settings := services.NewSettingsService(env.config)
	checkInSvc := services.NewCheckInService(env.checkIns, env.contacts, env.categories, settings, clock)
	defaults := settings.GetDefaults()

	env.services = &Services{
		CheckIns:   checkInSvc,
		Contacts:   services.NewContactService(env.contacts, env.categories, env.checkIns, checkInSvc, clock),
		Categories: services.NewCategoryService(env.categories, env.contacts, clock),
		Dashboard:  services.NewDashboardService(env.checkIns, env.contacts, clock),
		Backup:     services.NewBackupService(env.checkIns, env.contacts, env.categories, clock),
		Settings:   settings,
		Scheduler: services.NewScheduler(defaults.Reminders, memory.NewSchedulerStore(),
			checkInSvc, env.contacts, notify.NewConsole(env.reminders), clock),
		Config: env.config,
	}
	SetServices(env.services)

	originalNow := now
	now = func() time.Time { return testNow }
	t.Cleanup(func() {
		SetServices(nil)
		now = originalNow
	})
	return env
}

func (e *testEnv) seedCategory(t *testing.T, id, name string, freq domain.CheckInFrequency) {
	t.Helper()
	require.NoError(t, e.categories.Save(context.Background(), domain.Category{
		ID:        domain.CategoryID(id),
		Name:      name,
		Frequency: freq,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}))
}

func (e *testEnv) seedContact(t *testing.T, id, name, categoryID string) {
	t.Helper()
	require.NoError(t, e.contacts.Save(context.Background(), domain.Contact{
		ID:         domain.ContactID(id),
		Name:       name,
		CategoryID: domain.CategoryID(categoryID),
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}))
}

func (e *testEnv) seedCheckIn(t *testing.T, id, contactID string, scheduled, completed time.Time, notes string) {
	t.Helper()
	sd, err := domain.NewScheduledDate(scheduled)
	require.NoError(t, err)
	rec := domain.CheckInRecord{
		ID:            domain.CheckInID(id),
		ContactID:     domain.ContactID(contactID),
		ScheduledDate: sd,
		Notes:         domain.CheckInNotes(notes),
	}
	if !completed.IsZero() {
		rec.CompletionDate, err = domain.NewCompletionDate(completed)
		require.NoError(t, err)
	}
	require.NoError(t, e.checkIns.Save(context.Background(), domain.NewCheckIn(rec, testNow)))
}

// seedFriends adds a two-weekly category with Alice in it and Bob outside it.
func (e *testEnv) seedFriends(t *testing.T) {
	t.Helper()
	e.seedCategory(t, "friends", "Friends", domain.CheckInFrequency{Value: 2, Unit: domain.UnitWeeks})
	e.seedContact(t, "alice", "Alice", "friends")
	e.seedContact(t, "bob", "Bob", "")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCommandWithInput(t, "", args...)
}

func runCommandWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores defaults so flag values do not leak between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
