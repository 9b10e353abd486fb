package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dothis/internal/model"
	"dothis/internal/task"
	"dothis/internal/task/repository"
	"dothis/pkg/gcalendar"
	"dothis/pkg/nlparse"
	"dothis/pkg/recurrence"
)

// seriesNamespace is uuid.NameSpaceDNS; series IDs are derived from the first instance.
var seriesNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func seriesID(userID, firstID string) string {
	return uuid.NewSHA1(seriesNamespace, []byte(userID+"/"+firstID)).String()
}

// resolvePriority applies an explicit override, then the parsed keyword, then medium.
func (uc *implUseCase) resolvePriority(override, parsed string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(override))
	if p == "" {
		p = parsed
	}
	switch p {
	case "":
		return model.PriorityMedium, nil
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", task.ErrInvalidPriority, override)
	}
}

// resolveRecurrence prefers an explicit config over the inline keyword.
func (uc *implUseCase) resolveRecurrence(explicit *recurrence.Config, inline nlparse.Recurrence) (recurrence.Config, error) {
	if explicit != nil {
		return validRecurrence(*explicit)
	}
	if inline == "" {
		return recurrence.Config{Pattern: recurrence.PatternNone}, nil
	}
	return recurrence.Config{Pattern: recurrence.Pattern(inline)}, nil
}

func validRecurrence(cfg recurrence.Config) (recurrence.Config, error) {
	if cfg.Pattern == "" {
		cfg.Pattern = recurrence.PatternNone
	}
	if err := cfg.Validate(); err != nil {
		return recurrence.Config{}, fmt.Errorf("%w: %v", task.ErrInvalidRecurrence, err)
	}
	return cfg, nil
}

// tryCreateCalendarEvent pushes a dated task to Google Calendar.
// Returns the event ID, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, opt repository.CreateTaskOptions) string {
	if uc.calendar == nil || opt.DueDate == nil {
		return ""
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     opt.Title,
		Description: opt.Description,
		Timezone:    uc.timezone(),
	}

	if h, m, ok := recurrence.ParseClock(opt.DueTime); ok {
		start := opt.DueDate.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		minutes := opt.DurationMinutes
		if minutes <= 0 {
			minutes = defaultEventMinutes
		}
		req.StartTime = start
		req.EndTime = start.Add(time.Duration(minutes) * time.Minute)
	} else {
		req.AllDay = true
		req.StartTime = *opt.DueDate
		req.EndTime = opt.DueDate.AddDate(0, 0, 1)
	}

	if rule, ok := recurrence.RRule(opt.Recurrence); ok {
		req.Recurrence = []string{rule}
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar event creation failed for %q (non-fatal): %v", opt.Title, err)
		return ""
	}
	return event.ID
}

// timezone is the IANA name of the parser location, or "" for the process zone.
func (uc *implUseCase) timezone() string {
	if name := uc.dates.Location().String(); name != "Local" {
		return name
	}
	return ""
}
