package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change reminder and check-in settings.

Settings are stored in ~/.kith/config.toml. A running 'kith remind' picks up
changes to that file without a restart.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting.

Keys:
  reminders.enabled           true or false
  reminders.interval_minutes  minutes between reminder runs (at least 1)
  reminders.upcoming_days     days ahead to include in reminders (0 = overdue only)
  checkins.upcoming_days      default window for 'kith checkin upcoming'`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Reminders]")
	if settings.Reminders.Enabled {
		cmd.Printf("  Enabled: yes\n")
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Printf("  Interval: %d minutes\n", int(settings.Reminders.Interval/time.Minute))
	cmd.Printf("  Upcoming days: %d\n", settings.Reminders.UpcomingDays)
	cmd.Println()

	cmd.Println("[Check-ins]")
	cmd.Printf("  Upcoming days: %d\n", settings.CheckIns.UpcomingDays)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}
