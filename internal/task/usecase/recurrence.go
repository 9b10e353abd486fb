package usecase

import (
	"context"

	"dothis/internal/model"
	"dothis/internal/task"
	"dothis/internal/task/repository"
	"dothis/pkg/recurrence"
)

// UpdateRecurrence replaces the schedule of an open task. Instances already
// completed keep the schedule they were generated with.
func (uc *implUseCase) UpdateRecurrence(ctx context.Context, sc model.Scope, input task.UpdateRecurrenceInput) (task.UpdateRecurrenceOutput, error) {
	cfg, err := validRecurrence(input.Recurrence)
	if err != nil {
		return task.UpdateRecurrenceOutput{}, err
	}

	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRecurrence GetOneTask: %v", err)
		return task.UpdateRecurrenceOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateRecurrenceOutput{}, task.ErrTaskNotFound
	}
	if existing.Completed {
		return task.UpdateRecurrenceOutput{}, task.ErrTaskCompleted
	}

	t, err := uc.repo.UpdateRecurrence(ctx, repository.UpdateRecurrenceOptions{ID: input.ID, UserID: sc.UserID, Recurrence: cfg})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRecurrence UpdateRecurrence: %v", err)
		return task.UpdateRecurrenceOutput{}, err
	}
	if t.ID == "" {
		return task.UpdateRecurrenceOutput{}, task.ErrTaskCompleted
	}
	return task.UpdateRecurrenceOutput{Task: t}, nil
}

// PreviewRecurrence describes a schedule and lists its next dates without storing anything.
func (uc *implUseCase) PreviewRecurrence(ctx context.Context, input task.PreviewRecurrenceInput) (task.PreviewRecurrenceOutput, error) {
	cfg, err := validRecurrence(input.Recurrence)
	if err != nil {
		return task.PreviewRecurrenceOutput{}, err
	}

	from := uc.clock.Now().In(uc.dates.Location())
	if input.From != nil {
		from = *input.From
	}
	count := input.Count
	if count <= 0 {
		count = uc.previewCount
	}
	count = min(count, maxPreviewCount)

	rule, _ := recurrence.RRule(cfg)
	out := task.PreviewRecurrenceOutput{
		Description: recurrence.Describe(cfg),
		RRule:       rule,
		Dates:       recurrence.Upcoming(cfg, from, count),
	}
	uc.l.Debugf(ctx, "PreviewRecurrence: pattern=%s dates=%d", cfg.Pattern, len(out.Dates))
	return out, nil
}
