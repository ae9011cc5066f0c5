package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

func TestNewServices_Memory(t *testing.T) {
	svc, closeFn, err := newServices(cli.Options{Memory: true})
	require.NoError(t, err)
	defer func() { assert.NoError(t, closeFn()) }()

	assert.NotNil(t, svc.CheckIns)
	assert.NotNil(t, svc.Scheduler)
	assert.NotNil(t, svc.Config)

	contacts, err := svc.Contacts.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestNewServices_SQLitePersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svc, closeFn, err := newServices(cli.Options{DataDir: dir})
	require.NoError(t, err)

	created, err := svc.Categories.SeedDefaults(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, created)
	require.NoError(t, svc.Settings.Set("checkins.upcoming_days", "14"))
	require.NoError(t, closeFn())

	assert.FileExists(t, filepath.Join(dir, "metadata.db"))
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	svc, closeFn, err = newServices(cli.Options{DataDir: dir})
	require.NoError(t, err)
	defer func() { assert.NoError(t, closeFn()) }()

	categories, err := svc.Categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(domain.DefaultCategories()))

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 14, settings.CheckIns.UpcomingDays)
}

func TestNewServices_BadDataDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	_, _, err := newServices(cli.Options{DataDir: blocker})

	assert.Error(t, err)
}

func TestNewServices_SQLiteImportDanglingContact(t *testing.T) {
	ctx := context.Background()
	svc, closeFn, err := newServices(cli.Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	defer func() { assert.NoError(t, closeFn()) }()

	snapshot := &domain.Snapshot{
		Version: domain.SnapshotVersion,
		Categories: []domain.SnapshotCategory{
			{ID: "weekly", Name: "Weekly", Frequency: domain.SnapshotFrequency{Value: 1, Unit: "weeks"}},
		},
		CheckIns: []domain.SnapshotCheckIn{
			{ID: "ci1", ContactID: "ghost", ScheduledDate: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)},
		},
	}

	_, err = svc.Backup.Import(ctx, snapshot)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	categories, err := svc.Categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}
