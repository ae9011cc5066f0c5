package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// now supplies the default completion date. Replaced in tests.
var now = time.Now

var checkInCmd = &cobra.Command{
	Use:     "checkin",
	Aliases: []string{"checkins", "ci"},
	Short:   "Schedule, complete and review check-ins",
	Long: `Check-ins are the scheduled moments to get in touch with a contact.

Completing a check-in schedules the next one automatically, one category
frequency after the completed check-in's scheduled date.

Dates are given as YYYY-MM-DD or RFC 3339.`,
}

var checkInScheduleCmd = &cobra.Command{
	Use:   "schedule [contact-id]",
	Short: "Schedule a contact's next check-in from their category frequency",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckInSchedule,
}

var checkInAddCmd = &cobra.Command{
	Use:   "add [contact-id]",
	Short: "Add a check-in on a specific date",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckInAdd,
}

var checkInCompleteCmd = &cobra.Command{
	Use:   "complete [checkin-id]",
	Short: "Mark a check-in as completed and schedule the next one",
	Long: `Mark a check-in as completed.

Examples:
  kith checkin complete <checkin-id>
  kith checkin complete <checkin-id> --date 2026-03-01 --notes "Coffee at the usual place"`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckInComplete,
}

var checkInRescheduleCmd = &cobra.Command{
	Use:   "reschedule [checkin-id] [date]",
	Short: "Move a check-in to a new date",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheckInReschedule,
}

var checkInOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List overdue check-ins",
	RunE:  runCheckInOverdue,
}

var checkInUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List check-ins due in the next few days",
	RunE:  runCheckInUpcoming,
}

var checkInTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List check-ins scheduled for today",
	RunE:  runCheckInToday,
}

var checkInHistoryCmd = &cobra.Command{
	Use:   "history [contact-id]",
	Short: "Show every check-in for a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckInHistory,
}

// Check-in flags.
var (
	checkInBase string
	checkInDays int

	addDate  string
	addNotes string

	completeDate  string
	completeNotes string
)

func init() {
	checkInScheduleCmd.Flags().StringVar(&checkInBase, "base", "", "Date to count the frequency from (default now)")

	checkInAddCmd.Flags().StringVarP(&addDate, "date", "d", "", "Scheduled date (required)")
	checkInAddCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Notes for the check-in")
	_ = checkInAddCmd.MarkFlagRequired("date")

	checkInCompleteCmd.Flags().StringVarP(&completeDate, "date", "d", "", "Completion date (default now)")
	checkInCompleteCmd.Flags().StringVarP(&completeNotes, "notes", "n", "", "What you talked about")

	checkInUpcomingCmd.Flags().IntVar(&checkInDays, "days", 0, "Days to look ahead (default from settings)")

	checkInCmd.AddCommand(checkInScheduleCmd)
	checkInCmd.AddCommand(checkInAddCmd)
	checkInCmd.AddCommand(checkInCompleteCmd)
	checkInCmd.AddCommand(checkInRescheduleCmd)
	checkInCmd.AddCommand(checkInOverdueCmd)
	checkInCmd.AddCommand(checkInUpcomingCmd)
	checkInCmd.AddCommand(checkInTodayCmd)
	checkInCmd.AddCommand(checkInHistoryCmd)
	rootCmd.AddCommand(checkInCmd)
}

func runCheckInSchedule(cmd *cobra.Command, args []string) error {
	if checkInService == nil {
		return errors.New("check-in service not configured")
	}

	contactID, err := domain.ParseContactID(args[0])
	if err != nil {
		return err
	}
	input := driving.ScheduleInitialInput{ContactID: contactID}
	if checkInBase != "" {
		base, err := domain.ParseScheduledDate(checkInBase)
		if err != nil {
			return err
		}
		input.BaseDate = base
	}

	checkIn, err := checkInService.ScheduleInitialCheckIn(cmd.Context(), input)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to schedule check-in: %w; the contact needs a category", err)
	}
	if err != nil {
		return fmt.Errorf("failed to schedule check-in: %w", err)
	}

	cmd.Printf("Scheduled check-in for %s\n", checkIn.ScheduledDate().Time().Format(domain.DateLayout))
	cmd.Printf("  ID: %s\n", checkIn.ID())
	return nil
}

func runCheckInAdd(cmd *cobra.Command, args []string) error {
	if checkInService == nil {
		return errors.New("check-in service not configured")
	}

	contactID, err := domain.ParseContactID(args[0])
	if err != nil {
		return err
	}
	scheduled, err := domain.ParseScheduledDate(addDate)
	if err != nil {
		return err
	}
	notes, err := domain.NewCheckInNotes(addNotes)
	if err != nil {
		return err
	}

	checkIn, err := checkInService.CreateManualCheckIn(cmd.Context(), driving.CreateManualInput{
		ContactID:     contactID,
		ScheduledDate: scheduled,
		Notes:         notes,
	})
	if err != nil {
		return fmt.Errorf("failed to add check-in: %w", err)
	}

	cmd.Printf("Added check-in for %s (%s)\n",
		checkIn.ScheduledDate().Time().Format(domain.DateLayout), checkIn.Status())
	cmd.Printf("  ID: %s\n", checkIn.ID())
	return nil
}

func runCheckInComplete(cmd *cobra.Command, args []string) error {
	if checkInService == nil {
		return errors.New("check-in service not configured")
	}

	checkInID, err := domain.ParseCheckInID(args[0])
	if err != nil {
		return err
	}
	completion, err := domain.NewCompletionDate(now())
	if err != nil {
		return err
	}
	if completeDate != "" {
		if completion, err = domain.ParseCompletionDate(completeDate); err != nil {
			return err
		}
	}
	notes, err := domain.NewCheckInNotes(completeNotes)
	if err != nil {
		return err
	}

	result, err := checkInService.CompleteCheckIn(cmd.Context(), driving.CompleteInput{
		CheckInID:      checkInID,
		CompletionDate: completion,
		Notes:          notes,
	})
	if err != nil {
		return fmt.Errorf("failed to complete check-in: %w", err)
	}

	cmd.Printf("Completed check-in %s\n", result.Completed.ID())
	cmd.Printf("Next check-in: %s (ID: %s)\n",
		result.Next.ScheduledDate().Time().Format(domain.DateLayout), result.Next.ID())
	return nil
}

func runCheckInReschedule(cmd *cobra.Command, args []string) error {
	if checkInService == nil {
		return errors.New("check-in service not configured")
	}

	checkInID, err := domain.ParseCheckInID(args[0])
	if err != nil {
		return err
	}
	date, err := domain.ParseScheduledDate(args[1])
	if err != nil {
		return err
	}

	checkIn, err := checkInService.RescheduleCheckIn(cmd.Context(), driving.RescheduleInput{
		CheckInID:        checkInID,
		NewScheduledDate: date,
	})
	if err != nil {
		return fmt.Errorf("failed to reschedule check-in: %w", err)
	}

	cmd.Printf("Rescheduled check-in %s to %s (%s)\n",
		checkIn.ID(), checkIn.ScheduledDate().Time().Format(domain.DateLayout), checkIn.Status())
	return nil
}

func runCheckInOverdue(cmd *cobra.Command, _ []string) error {
	if checkInService == nil {
		return errors.New("check-in service not configured")
	}

	checkIns, err := checkInService.OverdueCheckIns(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list overdue check-ins: %w", err)
	}
	if len(checkIns) == 0 {
		cmd.Println("Nothing overdue.")
		return nil
	}

	cmd.Printf("Overdue check-ins (%d):\n", len(checkIns))
	printCheckIns(cmd.Context(), cmd, checkIns)
	return nil
}

func runCheckInUpcoming(cmd *cobra.Command, _ []string) error {
	if checkInService == nil {
		return errors.New("check-in service not configured")
	}

	checkIns, err := checkInService.UpcomingCheckIns(cmd.Context(), checkInDays)
	if err != nil {
		return fmt.Errorf("failed to list upcoming check-ins: %w", err)
	}
	if len(checkIns) == 0 {
		cmd.Println("No upcoming check-ins.")
		return nil
	}

	cmd.Printf("Upcoming check-ins (%d):\n", len(checkIns))
	printCheckIns(cmd.Context(), cmd, checkIns)
	return nil
}

func runCheckInToday(cmd *cobra.Command, _ []string) error {
	if checkInService == nil {
		return errors.New("check-in service not configured")
	}

	checkIns, err := checkInService.TodayCheckIns(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list today's check-ins: %w", err)
	}
	if len(checkIns) == 0 {
		cmd.Println("Nothing scheduled for today.")
		return nil
	}

	cmd.Printf("Today (%d):\n", len(checkIns))
	printCheckIns(cmd.Context(), cmd, checkIns)
	return nil
}

func runCheckInHistory(cmd *cobra.Command, args []string) error {
	if checkInService == nil {
		return errors.New("check-in service not configured")
	}

	contactID, err := domain.ParseContactID(args[0])
	if err != nil {
		return err
	}
	checkIns, err := checkInService.CheckInHistory(cmd.Context(), contactID)
	if err != nil {
		return fmt.Errorf("failed to get check-in history: %w", err)
	}
	if len(checkIns) == 0 {
		cmd.Println("No check-ins for this contact.")
		return nil
	}

	cmd.Printf("History (%d):\n", len(checkIns))
	printCheckIns(cmd.Context(), cmd, checkIns)
	return nil
}
