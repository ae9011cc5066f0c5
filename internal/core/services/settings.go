package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyRemindersEnabled      = "reminders.enabled"
	KeyRemindersInterval     = "reminders.interval_minutes"
	KeyRemindersUpcomingDays = "reminders.upcoming_days"
	KeyCheckInsUpcomingDays  = "checkins.upcoming_days"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling unset keys with defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	interval := s.getInt(KeyRemindersInterval, int(defaults.Reminders.Interval/time.Minute))
	settings := &domain.AppSettings{
		Reminders: domain.ReminderSettings{
			Enabled:      s.getBool(KeyRemindersEnabled, defaults.Reminders.Enabled),
			Interval:     time.Duration(interval) * time.Minute,
			UpcomingDays: s.getInt(KeyRemindersUpcomingDays, defaults.Reminders.UpcomingDays),
		},
		CheckIns: domain.CheckInSettings{
			UpcomingDays: s.getInt(KeyCheckInsUpcomingDays, defaults.CheckIns.UpcomingDays),
		},
	}
	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(KeyRemindersEnabled, settings.Reminders.Enabled); err != nil {
		return fmt.Errorf("save reminders enabled: %w", err)
	}
	if err := s.configStore.Set(KeyRemindersInterval, int(settings.Reminders.Interval/time.Minute)); err != nil {
		return fmt.Errorf("save reminders interval: %w", err)
	}
	if err := s.configStore.Set(KeyRemindersUpcomingDays, settings.Reminders.UpcomingDays); err != nil {
		return fmt.Errorf("save reminders upcoming_days: %w", err)
	}
	if err := s.configStore.Set(KeyCheckInsUpcomingDays, settings.CheckIns.UpcomingDays); err != nil {
		return fmt.Errorf("save checkins upcoming_days: %w", err)
	}
	return nil
}

// Set parses value for key and persists the resulting settings.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyRemindersEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &domain.ValidationError{Field: key, Reason: fmt.Sprintf("%q is not a boolean", value)}
		}
		settings.Reminders.Enabled = b
	case KeyRemindersInterval:
		n, err := parseSettingInt(key, value)
		if err != nil {
			return err
		}
		settings.Reminders.Interval = time.Duration(n) * time.Minute
	case KeyRemindersUpcomingDays:
		n, err := parseSettingInt(key, value)
		if err != nil {
			return err
		}
		settings.Reminders.UpcomingDays = n
	case KeyCheckInsUpcomingDays:
		n, err := parseSettingInt(key, value)
		if err != nil {
			return err
		}
		settings.CheckIns.UpcomingDays = n
	default:
		return &domain.ValidationError{Field: "setting", Reason: fmt.Sprintf("unknown key %q", key)}
	}

	return s.Save(settings)
}

// Keys lists the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyRemindersEnabled,
		KeyRemindersInterval,
		KeyRemindersUpcomingDays,
		KeyCheckInsUpcomingDays,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func parseSettingInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &domain.ValidationError{Field: key, Reason: fmt.Sprintf("%q is not a whole number", value)}
	}
	return n, nil
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if n, ok := s.configStore.Int(key); ok {
		return n
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if b, ok := s.configStore.Bool(key); ok {
		return b
	}
	return defaultVal
}
