package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dothis/internal/model"
	"dothis/internal/task"
	"dothis/internal/task/repository"
	"dothis/pkg/recurrence"
)

// Complete marks the task done. A recurring task gets its next instance
// scheduled one cadence step after its own due date, not after today, so a
// late completion keeps the original rhythm. The completion and the insert of
// the next instance are committed together.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.CompleteOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetOneTask: %v", err)
		return task.CompleteOutput{}, err
	}
	if existing.ID == "" {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}
	if existing.Completed {
		return task.CompleteOutput{}, task.ErrTaskCompleted
	}

	now := uc.clock.Now()
	var nextOpt *repository.CreateTaskOptions
	if existing.IsRecurring() {
		if opt, ok := uc.nextInstance(existing, now); ok {
			nextOpt = &opt
		} else {
			uc.l.Infof(ctx, "Complete: series %s ends at index %d", existing.SeriesID, existing.SeriesIndex)
		}
	}

	done, next, err := uc.repo.CompleteAndSchedule(ctx,
		repository.CompleteTaskOptions{ID: id, UserID: sc.UserID, CompletedAt: now}, nextOpt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete CompleteAndSchedule: %v", err)
		return task.CompleteOutput{}, err
	}
	if done.ID == "" {
		// Completed concurrently.
		return task.CompleteOutput{}, task.ErrTaskCompleted
	}

	out := task.CompleteOutput{Task: done, Next: next}
	if next != nil {
		uc.l.Infof(ctx, "Complete: task=%s next=%s due=%s", done.ID, next.ID, next.DueDate.Format(time.DateOnly))
	}
	return out, nil
}

// nextInstance builds the follow-up of a completed recurring task. ok is false
// once the occurrence cap or end date is reached, or the schedule does not advance.
func (uc *implUseCase) nextInstance(t model.Task, now time.Time) (repository.CreateTaskOptions, bool) {
	cfg := t.Recurrence
	if cfg.Occurrences > 0 && t.SeriesIndex >= cfg.Occurrences {
		return repository.CreateTaskOptions{}, false
	}

	base := uc.dates.StartOfDay(now)
	if t.DueDate != nil {
		base = *t.DueDate
	}
	nextAt, ok := recurrence.Advance(cfg, base)
	if !ok {
		return repository.CreateTaskOptions{}, false
	}
	due := uc.dates.StartOfDay(nextAt)

	dueTime := t.DueTime
	if cfg.Time != "" {
		dueTime = cfg.Time
	}

	return repository.CreateTaskOptions{
		ID:              uuid.NewString(),
		UserID:          t.UserID,
		SeriesID:        t.SeriesID,
		SeriesIndex:     t.SeriesIndex + 1,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        t.Priority,
		Project:         t.Project,
		Tags:            t.Tags,
		DueDate:         &due,
		DueTime:         dueTime,
		DurationMinutes: t.DurationMinutes,
		Recurrence:      cfg,
	}, true
}
