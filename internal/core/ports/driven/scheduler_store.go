package driven

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// SchedulerStore keeps reminder task state and run history so `kith remind`
// resumes where it left off after a restart.
type SchedulerStore interface {
	// GetTask returns nil and no error for a task that was never saved.
	GetTask(ctx context.Context, taskID string) (*domain.ScheduledTask, error)
	ListTasks(ctx context.Context) ([]domain.ScheduledTask, error)
	// SaveTask upserts by task ID.
	SaveTask(ctx context.Context, task *domain.ScheduledTask) error

	RecordResult(ctx context.Context, result *domain.TaskResult) error
	// GetTaskHistory returns at most limit runs, newest first.
	GetTaskHistory(ctx context.Context, taskID string, limit int) ([]domain.TaskResult, error)
	// PruneHistory keeps the newest keep runs of every task.
	PruneHistory(ctx context.Context, keep int) error
}
