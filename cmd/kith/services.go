package main

import (
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/kith-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/kith-cli/internal/adapters/driven/notify"
	"github.com/custodia-labs/kith-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kith-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kith-cli/internal/core/services"
	"github.com/custodia-labs/kith-cli/internal/logger"
)

// stores groups the driven adapters a run needs.
type stores struct {
	checkIns   driven.CheckInStore
	contacts   driven.ContactStore
	categories driven.CategoryStore
	scheduler  driven.SchedulerStore
	config     configStore
	close      func() error
}

// configStore is what the file and memory config stores have in common.
type configStore interface {
	driven.ConfigStore
	cli.Watcher
}

var clock domain.Clock = time.Now

// newServices is the cli.Factory for the kith binary.
func newServices(opts cli.Options) (*cli.Services, func() error, error) {
	st, err := openStores(opts)
	if err != nil {
		return nil, nil, err
	}

	settings := services.NewSettingsService(st.config)
	current, err := settings.Get()
	if err != nil {
		_ = st.close()
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	checkIns := services.NewCheckInService(st.checkIns, st.contacts, st.categories, settings, clock)
	notifier := notify.NewRateLimited(notify.NewConsole(os.Stdout), notify.DefaultRateLimit)

	return &cli.Services{
		CheckIns:   checkIns,
		Contacts:   services.NewContactService(st.contacts, st.categories, st.checkIns, checkIns, clock),
		Categories: services.NewCategoryService(st.categories, st.contacts, clock),
		Dashboard:  services.NewDashboardService(st.checkIns, st.contacts, clock),
		Backup:     services.NewBackupService(st.checkIns, st.contacts, st.categories, clock),
		Settings:   settings,
		Scheduler:  services.NewScheduler(current.Reminders, st.scheduler, checkIns, st.contacts, notifier, clock),
		Config:     st.config,
	}, st.close, nil
}

func openStores(opts cli.Options) (*stores, error) {
	if opts.Memory {
		logger.Debug("using in-memory storage")
		return &stores{
			checkIns:   memory.NewCheckInStore(clock),
			contacts:   memory.NewContactStore(),
			categories: memory.NewCategoryStore(),
			scheduler:  memory.NewSchedulerStore(),
			config:     memory.NewConfigStore(),
			close:      func() error { return nil },
		}, nil
	}

	db, err := sqlite.NewStore(opts.DataDir, clock)
	if err != nil {
		return nil, err
	}
	logger.Debug("using database %s", db.Path())

	cfg, err := file.NewConfigStore(opts.DataDir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("using config %s", cfg.Path())

	return &stores{
		checkIns:   db.CheckInStore(),
		contacts:   db.ContactStore(),
		categories: db.CategoryStore(),
		scheduler:  db.SchedulerStore(),
		config:     cfg,
		close:      db.Close,
	}, nil
}
