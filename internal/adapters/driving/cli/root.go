// Package cli provides the cobra command tree for kith.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kith-cli/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Global flags.
var (
	verbose    bool
	dataDir    string
	memoryMode bool
)

// Services used by the commands. Nil means not configured.
var (
	checkInService   driving.CheckInService
	contactService   driving.ContactService
	categoryService  driving.CategoryService
	dashboardService driving.DashboardService
	backupService    driving.BackupService
	settingsService  driving.SettingsService
	scheduler        driving.Scheduler
	configWatcher    Watcher
)

// annotationNoServices marks commands that never touch user data.
const annotationNoServices = "kith/no-services"

// Watcher reports changes to the configuration backing SettingsService.
type Watcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Services bundles everything the commands need.
type Services struct {
	CheckIns   driving.CheckInService
	Contacts   driving.ContactService
	Categories driving.CategoryService
	Dashboard  driving.DashboardService
	Backup     driving.BackupService
	Settings   driving.SettingsService
	Scheduler  driving.Scheduler
	Config     Watcher
}

// Options carries the global flags a Factory builds services from.
type Options struct {
	// DataDir overrides ~/.kith.
	DataDir string

	// Memory selects ephemeral in-memory stores.
	Memory bool
}

// Factory builds services once flags are parsed. The returned function
// releases any resources the services hold.
type Factory func(opts Options) (*Services, func() error, error)

var (
	factory       Factory
	closeServices func() error
)

var rootCmd = &cobra.Command{
	Use:   "kith",
	Short: "Keep in touch with the people who matter",
	Long: `kith tracks when you last checked in with the people you care about
and schedules the next check-in from each contact's category cadence.

Data lives in ~/.kith (override with --data-dir).`,
	SilenceUsage:      true,
	PersistentPreRunE: openServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default ~/.kith)")
	rootCmd.PersistentFlags().BoolVar(&memoryMode, "memory", false, "Use ephemeral in-memory storage")
}

// SetFactory registers how services are built for each run.
func SetFactory(f Factory) {
	factory = f
}

// SetServices installs services directly, bypassing the factory.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	checkInService = s.CheckIns
	contactService = s.Contacts
	categoryService = s.Categories
	dashboardService = s.Dashboard
	backupService = s.Backup
	settingsService = s.Settings
	scheduler = s.Scheduler
	configWatcher = s.Config
}

func openServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if factory == nil || closeServices != nil || cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}

	services, closeFn, err := factory(Options{DataDir: dataDir, Memory: memoryMode})
	if err != nil {
		return fmt.Errorf("opening kith data: %w", err)
	}
	SetServices(services)
	closeServices = closeFn
	if closeServices == nil {
		closeServices = func() error { return nil }
	}
	return nil
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if closeServices != nil {
		if closeErr := closeServices(); closeErr != nil && err == nil {
			err = closeErr
		}
		closeServices = nil
	}
	return err
}
