package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"dothis/internal/model"
	"dothis/internal/task"
	"dothis/internal/task/repository"
)

// Create parses the text into a new task and stores it, optionally pushing it
// to Google Calendar.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	res := uc.extractor.Parse(text)
	if !res.Success {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}
	parsed := res.Task

	priority, err := uc.resolvePriority(input.Priority, string(parsed.Priority))
	if err != nil {
		return task.CreateOutput{}, err
	}
	cfg, err := uc.resolveRecurrence(input.Recurrence, parsed.Recurrence)
	if err != nil {
		return task.CreateOutput{}, err
	}

	dueTime := parsed.Time
	if dueTime == "" {
		dueTime = cfg.Time
	}
	duration := 0
	if parsed.Duration != nil {
		duration = *parsed.Duration
	}

	id := uuid.NewString()
	opt := repository.CreateTaskOptions{
		ID:              id,
		UserID:          sc.UserID,
		SeriesID:        seriesID(sc.UserID, id),
		SeriesIndex:     1,
		Title:           parsed.Title,
		Description:     strings.TrimSpace(input.Description),
		Priority:        priority,
		Project:         parsed.Project,
		Tags:            parsed.Tags,
		DueDate:         parsed.Date,
		DueTime:         dueTime,
		DurationMinutes: duration,
		Recurrence:      cfg,
	}
	if input.Calendar {
		opt.CalendarEventID = uc.tryCreateCalendarEvent(ctx, opt)
	}

	t, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "Create: user=%s task=%s recurring=%v", sc.UserID, t.ID, t.IsRecurring())
	return task.CreateOutput{
		Task:        t,
		Confidence:  res.Confidence,
		Suggestions: res.Suggestions,
	}, nil
}
