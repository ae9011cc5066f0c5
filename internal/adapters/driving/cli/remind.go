package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kith-cli/internal/logger"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send check-in reminders",
	Long: `Collect overdue and soon-due check-ins and send a reminder for each.

Runs in the foreground until interrupted, repeating at the configured
interval. Edits to config.toml take effect while running.`,
	RunE: runRemind,
}

var (
	remindOnce   bool
	remindStatus bool
)

// statusRuns is how many past runs --status lists.
const statusRuns = 5

func init() {
	remindCmd.Flags().BoolVar(&remindOnce, "once", false, "Send reminders once and exit")
	remindCmd.Flags().BoolVar(&remindStatus, "status", false, "Show when reminders last ran and exit")
	remindCmd.MarkFlagsMutuallyExclusive("once", "status")
	rootCmd.AddCommand(remindCmd)
}

func runRemind(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	if remindStatus {
		return printRemindStatus(cmd)
	}

	if remindOnce {
		if err := scheduler.RunOnce(cmd.Context()); err != nil {
			return fmt.Errorf("failed to send reminders: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.SetTimestamps(true)
	defer logger.SetTimestamps(false)

	if configWatcher != nil && settingsService != nil {
		go func() {
			err := configWatcher.Watch(ctx, func() {
				settings, err := settingsService.Get()
				if err != nil {
					logger.Warn("reading settings: %v", err)
					return
				}
				if err := scheduler.Reconfigure(ctx, settings.Reminders); err != nil {
					logger.Warn("applying settings: %v", err)
				}
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("watching config: %v", err)
			}
		}()
	}

	cmd.Println("Sending reminders. Press Ctrl+C to stop.")
	err := scheduler.Start(ctx)
	if stopErr := scheduler.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("reminders stopped: %w", err)
	}
	cmd.Println("Stopped.")
	return nil
}

func printRemindStatus(cmd *cobra.Command) error {
	status, err := scheduler.Status(cmd.Context(), statusRuns)
	if err != nil {
		return fmt.Errorf("failed to read reminder status: %w", err)
	}
	if status.Task == nil {
		cmd.Println("Reminders have not run yet.")
		return nil
	}

	task := status.Task
	state := "disabled"
	if task.Enabled {
		state = "enabled"
	}
	cmd.Printf("Reminders: %s, every %s\n", state, task.Interval)
	cmd.Printf("  Last run:     %s\n", formatRunTime(task.LastRun))
	cmd.Printf("  Last success: %s\n", formatRunTime(task.LastSuccess))
	if task.Enabled {
		cmd.Printf("  Next run:     %s\n", formatRunTime(task.NextRun))
	}
	if task.LastError != "" {
		cmd.Printf("  Last error:   %s\n", task.LastError)
	}

	if len(status.Recent) == 0 {
		return nil
	}
	cmd.Println()
	cmd.Println("Recent runs:")
	for _, run := range status.Recent {
		outcome := fmt.Sprintf("ok      %d sent", run.ItemsProcessed)
		if !run.Success {
			outcome = "failed  " + run.Error
		}
		cmd.Printf("  %s  %s\n", formatRunTime(run.StartedAt), outcome)
	}
	return nil
}

func formatRunTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04")
}
