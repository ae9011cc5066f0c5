package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

func TestSettingsShow_Defaults(t *testing.T) {
	setupTestServices(t)

	out, err := runCommand(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Reminders]")
	assert.Contains(t, out, "Enabled: yes")
	assert.Contains(t, out, "Interval: 60 minutes")
	assert.Contains(t, out, "[Check-ins]")
	assert.Contains(t, out, "Upcoming days: 7")
}

func TestSettingsSet(t *testing.T) {
	env := setupTestServices(t)

	out, err := runCommand(t, "settings", "set", "reminders.enabled", "false")
	require.NoError(t, err)
	assert.Contains(t, out, "Set reminders.enabled = false")

	_, err = runCommand(t, "settings", "set", "reminders.interval_minutes", "15")
	require.NoError(t, err)

	out, err = runCommand(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Enabled: no")
	assert.Contains(t, out, "Interval: 15 minutes")
	minutes, _ := env.config.Int("reminders.interval_minutes")
	assert.Equal(t, 15, minutes)
}

func TestSettingsSet_Invalid(t *testing.T) {
	setupTestServices(t)

	tests := [][]string{
		{"reminders.enabled", "sometimes"},
		{"reminders.interval_minutes", "0"},
		{"checkins.upcoming_days", "-2"},
		{"no.such.key", "1"},
	}
	for _, args := range tests {
		_, err := runCommand(t, append([]string{"settings", "set"}, args...)...)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%v", args)
	}
}
