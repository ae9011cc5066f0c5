package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"status"},
	Short:   "Show a summary of your check-ins",
	RunE:    runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if dashboardService == nil {
		return errors.New("dashboard service not configured")
	}

	summary, err := dashboardService.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	cmd.Println("Dashboard")
	cmd.Println("=========")
	cmd.Printf("  Overdue:  %d\n", summary.OverdueCount)
	cmd.Printf("  Upcoming: %d (next %d days)\n", summary.UpcomingCount, domain.DefaultUpcomingDays)
	cmd.Printf("  Contacts: %d\n", summary.TotalContacts)

	if len(summary.ContactsByCategory) == 0 {
		return nil
	}

	names := categoryNames(cmd)
	keys := make([]string, 0, len(summary.ContactsByCategory))
	for k := range summary.ContactsByCategory {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cmd.Println()
	cmd.Println("By category:")
	for _, k := range keys {
		label := names[domain.CategoryID(k)]
		switch {
		case k == domain.UncategorizedKey:
			label = "Uncategorized"
		case label == "":
			label = k
		}
		cmd.Printf("  %-20s %d\n", label, summary.ContactsByCategory[k])
	}
	return nil
}
