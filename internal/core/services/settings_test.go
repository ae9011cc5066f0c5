package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kith-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_NilStoreReturnsDefaults(t *testing.T) {
	settings, err := NewSettingsService(nil).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyRemindersEnabled, false)
	_ = store.Set(KeyRemindersInterval, int64(15))
	_ = store.Set(KeyCheckInsUpcomingDays, 14)
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.False(t, settings.Reminders.Enabled)
	assert.Equal(t, 15*time.Minute, settings.Reminders.Interval)
	assert.Equal(t, domain.DefaultAppSettings().Reminders.UpcomingDays, settings.Reminders.UpcomingDays)
	assert.Equal(t, 14, settings.CheckIns.UpcomingDays)
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	want := domain.AppSettings{
		Reminders: domain.ReminderSettings{Enabled: false, Interval: 2 * time.Hour, UpcomingDays: 0},
		CheckIns:  domain.CheckInSettings{UpcomingDays: 3},
	}
	require.NoError(t, service.Save(&want))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, want, *got)
	minutes, ok := store.Int(KeyRemindersInterval)
	assert.True(t, ok)
	assert.Equal(t, 120, minutes)
}

func TestSettingsService_Get_WrongTypeFallsBack(t *testing.T) {
	store := newMockConfigStore()
	store.values[KeyRemindersEnabled] = "sometimes"
	store.values[KeyCheckInsUpcomingDays] = 4.5

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.True(t, settings.Reminders.Enabled)
	assert.Equal(t, domain.DefaultAppSettings().CheckIns.UpcomingDays, settings.CheckIns.UpcomingDays)
}

func TestSettingsService_Save_Rejects(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.Save(nil), domain.ErrInvalidInput)

	bad := domain.DefaultAppSettings()
	bad.CheckIns.UpcomingDays = 0
	assert.ErrorIs(t, service.Save(&bad), domain.ErrInvalidInput)

	assert.ErrorIs(t, NewSettingsService(nil).Save(&domain.AppSettings{}), domain.ErrNotImplemented)
}

func TestSettingsService_Save_StoreError(t *testing.T) {
	store := newMockConfigStore()
	store.setErr = errors.New("disk full")
	defaults := domain.DefaultAppSettings()

	err := NewSettingsService(store).Save(&defaults)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key, value string
		check      func(t *testing.T, s *domain.AppSettings)
	}{
		{KeyRemindersEnabled, "false", func(t *testing.T, s *domain.AppSettings) {
			assert.False(t, s.Reminders.Enabled)
		}},
		{KeyRemindersInterval, " 5 ", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 5*time.Minute, s.Reminders.Interval)
		}},
		{KeyRemindersUpcomingDays, "0", func(t *testing.T, s *domain.AppSettings) {
			assert.Zero(t, s.Reminders.UpcomingDays)
		}},
		{KeyCheckInsUpcomingDays, "30", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 30, s.CheckIns.UpcomingDays)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	tests := []struct{ key, value string }{
		{KeyRemindersEnabled, "maybe"},
		{KeyRemindersInterval, "soon"},
		{KeyRemindersInterval, "0"},
		{KeyRemindersUpcomingDays, "-1"},
		{"search.mode", "hybrid"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := service.Set(tt.key, tt.value)
			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestSettingsService_KeysAndDefaults(t *testing.T) {
	service := NewSettingsService(nil)

	assert.Equal(t, []string{
		KeyRemindersEnabled, KeyRemindersInterval, KeyRemindersUpcomingDays, KeyCheckInsUpcomingDays,
	}, service.Keys())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
