package repository

import (
	"context"

	"dothis/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Every method is scoped to one user.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	CompleteTask(ctx context.Context, opt CompleteTaskOptions) (model.Task, error)
	// CompleteAndSchedule completes a task and inserts next, if non-nil, atomically.
	CompleteAndSchedule(ctx context.Context, opt CompleteTaskOptions, next *CreateTaskOptions) (model.Task, *model.Task, error)
	UpdateRecurrence(ctx context.Context, opt UpdateRecurrenceOptions) (model.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
}
