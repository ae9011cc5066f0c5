package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kith-cli/internal/logger"
)

// Ensure Scheduler implements the interface.
var _ driving.Scheduler = (*Scheduler)(nil)

var schedulerLog = logger.Named("scheduler")

// Scheduler manages background task execution.
// Its only built-in task collects due check-ins and hands them to a Notifier.
type Scheduler struct {
	store    driven.SchedulerStore
	checkIns driving.CheckInService
	contacts driven.ContactStore
	notifier driven.Notifier
	clock    domain.Clock

	mu       sync.Mutex
	settings domain.ReminderSettings
	running  bool
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler from reminder settings.
func NewScheduler(
	settings domain.ReminderSettings,
	store driven.SchedulerStore,
	checkIns driving.CheckInService,
	contacts driven.ContactStore,
	notifier driven.Notifier,
	clock domain.Clock,
) *Scheduler {
	return &Scheduler{
		settings: settings,
		store:    store,
		checkIns: checkIns,
		contacts: contacts,
		notifier: notifier,
		clock:    clock,
	}
}

// Reconfigure applies new reminder settings, typically after the config
// file changed. The next tick picks up the new interval.
func (s *Scheduler) Reconfigure(ctx context.Context, settings domain.ReminderSettings) error {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	return s.syncReminderTask(ctx)
}

// Start begins the scheduler loop. This method blocks until Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil // Already running
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	if err := s.syncReminderTask(ctx); err != nil {
		schedulerLog.Warn("failed to initialise tasks: %v", err)
	}

	return s.run(ctx)
}

// RunOnce runs every enabled task now, regardless of NextRun, and waits
// for them to finish.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if err := s.syncReminderTask(ctx); err != nil {
		return fmt.Errorf("initialise tasks: %w", err)
	}

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].Enabled {
			s.runTask(ctx, &tasks[i])
		}
	}
	s.wg.Wait()
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	// Wait for running tasks to complete
	s.wg.Wait()

	return nil
}

// Status returns the stored reminder task and its most recent runs.
func (s *Scheduler) Status(ctx context.Context, limit int) (*domain.ReminderStatus, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if limit <= 0 {
		return nil, &domain.ValidationError{Field: "limit", Reason: "must be positive"}
	}

	task, err := s.store.GetTask(ctx, domain.TaskIDCheckInReminders)
	if err != nil {
		return nil, fmt.Errorf("get reminder task: %w", err)
	}
	status := &domain.ReminderStatus{Task: task}
	if task == nil {
		return status, nil
	}

	status.Recent, err = s.store.GetTaskHistory(ctx, task.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("get reminder history: %w", err)
	}
	return status, nil
}

// syncReminderTask creates or updates the reminder task from the current
// settings. Disabled reminders are never created.
func (s *Scheduler) syncReminderTask(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	s.mu.Lock()
	settings := s.settings
	s.mu.Unlock()

	task, err := s.store.GetTask(ctx, domain.TaskIDCheckInReminders)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	if task == nil {
		if !settings.Enabled {
			return nil
		}
		task = domain.NewReminderTask(settings, now)
	} else {
		task.Apply(settings, now)
	}
	return s.store.SaveTask(ctx, task)
}

// run is the main scheduler loop.
func (s *Scheduler) run(ctx context.Context) error {
	// Check for due tasks immediately on startup
	s.checkAndRunDueTasks(ctx)

	// Use a 1-minute ticker to check for due tasks
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.checkAndRunDueTasks(ctx)
		}
	}
}

// checkAndRunDueTasks finds and executes tasks that are due.
func (s *Scheduler) checkAndRunDueTasks(ctx context.Context) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		schedulerLog.Warn("failed to list tasks: %v", err)
		return
	}

	now := s.clock.Now()
	for i := range tasks {
		if tasks[i].Due(now) {
			s.runTask(ctx, &tasks[i])
		}
	}
}

// runTask executes a single task.
func (s *Scheduler) runTask(ctx context.Context, task *domain.ScheduledTask) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		result := &domain.TaskResult{
			TaskID:    task.ID,
			StartedAt: s.clock.Now(),
		}

		if task.ID != domain.TaskIDCheckInReminders {
			schedulerLog.Warn("unknown task ID: %s", task.ID)
			return
		}

		sent, err := s.sendReminders(ctx)
		result.Finish(s.clock.Now(), sent, err)
		schedulerLog.Debug("%s sent %d reminders in %s", task.ID, sent, result.Duration())
		if err != nil {
			schedulerLog.Warn("%s failed after %s: %v", task.ID, result.Duration(), err)
		}
		task.Record(result)

		if saveErr := s.store.SaveTask(ctx, task); saveErr != nil {
			schedulerLog.Warn("failed to save task %s: %v", task.ID, saveErr)
		}

		// Record result for history
		if recordErr := s.store.RecordResult(ctx, result); recordErr != nil {
			schedulerLog.Warn("failed to record result for %s: %v", task.ID, recordErr)
		}

		if pruneErr := s.store.PruneHistory(ctx, domain.HistoryRetention); pruneErr != nil {
			schedulerLog.Warn("failed to prune history: %v", pruneErr)
		}
	}()
}

// sendReminders notifies about overdue check-ins and those due within the
// configured upcoming window. It keeps going past individual failures and
// returns the number of reminders delivered.
func (s *Scheduler) sendReminders(ctx context.Context) (int, error) {
	if s.checkIns == nil || s.notifier == nil {
		return 0, nil
	}

	due, err := s.checkIns.OverdueCheckIns(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	days := s.settings.UpcomingDays
	s.mu.Unlock()
	if days > 0 {
		upcoming, err := s.checkIns.UpcomingCheckIns(ctx, days)
		if err != nil {
			return 0, err
		}
		due = append(due, upcoming...)
	}

	names := make(map[domain.ContactID]string)
	sent := 0
	var errs []error
	for _, c := range due {
		reminder := domain.Reminder{CheckIn: c, ContactName: s.contactName(ctx, names, c.ContactID())}
		if err := s.notifier.Notify(ctx, reminder); err != nil {
			errs = append(errs, fmt.Errorf("notify %s: %w", c.ID(), err))
			continue
		}
		sent++
	}
	return sent, errors.Join(errs...)
}

func (s *Scheduler) contactName(ctx context.Context, cache map[domain.ContactID]string, id domain.ContactID) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := id.String()
	if s.contacts != nil {
		if contact, err := s.contacts.Get(ctx, id); err == nil {
			name = contact.Name
		}
	}
	cache[id] = name
	return name
}
