package domain

import "time"

// TaskIDCheckInReminders identifies the built-in reminder task.
const TaskIDCheckInReminders = "checkin-reminders"

// HistoryRetention is how many results are kept per task.
const HistoryRetention = 100

// ScheduledTask is the persisted state of a recurring background task.
type ScheduledTask struct {
	ID       string
	Name     string
	Interval time.Duration
	Enabled  bool

	LastRun     time.Time
	NextRun     time.Time
	LastSuccess time.Time

	// LastError is empty after a successful run.
	LastError string
}

// NewReminderTask returns the reminder task for the given settings,
// due immediately.
func NewReminderTask(r ReminderSettings, now time.Time) *ScheduledTask {
	return &ScheduledTask{
		ID:       TaskIDCheckInReminders,
		Name:     "Check-in Reminders",
		Interval: r.Interval,
		Enabled:  r.Enabled,
		NextRun:  now,
	}
}

// Due reports whether an enabled task should run at now.
// A task that has never been scheduled is always due.
func (t *ScheduledTask) Due(now time.Time) bool {
	if !t.Enabled {
		return false
	}
	return t.NextRun.IsZero() || !t.NextRun.After(now)
}

// Apply updates the task from reminder settings. A changed interval
// pushes the next run to now plus the new interval.
func (t *ScheduledTask) Apply(r ReminderSettings, now time.Time) {
	if t.Interval != r.Interval {
		t.Interval = r.Interval
		t.NextRun = now.Add(r.Interval)
	}
	t.Enabled = r.Enabled
}

// Record folds a finished run into the task state.
func (t *ScheduledTask) Record(result *TaskResult) {
	t.LastRun = result.StartedAt
	t.NextRun = result.EndedAt.Add(t.Interval)
	if result.Success {
		t.LastError = ""
		t.LastSuccess = result.EndedAt
		return
	}
	t.LastError = result.Error
}

// TaskResult is the outcome of one task run.
type TaskResult struct {
	TaskID    string
	StartedAt time.Time
	EndedAt   time.Time
	Success   bool
	Error     string

	// ItemsProcessed counts reminders delivered.
	ItemsProcessed int
}

// Finish stamps the end time and outcome of a run.
func (r *TaskResult) Finish(at time.Time, sent int, err error) {
	r.EndedAt = at
	r.ItemsProcessed = sent
	r.Success = err == nil
	r.Error = ""
	if err != nil {
		r.Error = err.Error()
	}
}

// Duration is how long the run took.
func (r TaskResult) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// ReminderStatus is what `kith remind --status` reports.
type ReminderStatus struct {
	// Task is nil until reminders have been enabled at least once.
	Task *ScheduledTask

	// Recent runs, newest first.
	Recent []TaskResult
}
