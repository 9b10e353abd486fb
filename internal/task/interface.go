package task

import (
	"context"

	"dothis/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse runs the extractor without storing anything.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Task CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Complete marks a task done and, for recurring tasks, schedules the next instance.
	Complete(ctx context.Context, sc model.Scope, id string) (CompleteOutput, error)
	// UpdateRecurrence changes the schedule of an open instance. Completed instances are history.
	UpdateRecurrence(ctx context.Context, sc model.Scope, input UpdateRecurrenceInput) (UpdateRecurrenceOutput, error)
	PreviewRecurrence(ctx context.Context, input PreviewRecurrenceInput) (PreviewRecurrenceOutput, error)
}
