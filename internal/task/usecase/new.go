package usecase

import (
	"dothis/internal/task/repository"
	"dothis/pkg/datemath"
	"dothis/pkg/gcalendar"
	"dothis/pkg/log"
	"dothis/pkg/nlparse"
)

const (
	defaultPreviewCount = 5
	maxPreviewCount     = 50
	defaultEventMinutes = 60
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l            log.Logger
	repo         repository.Repository
	extractor    *nlparse.Extractor
	calendar     gcalendar.Calendar // nil when calendar sync is off
	calendarID   string
	dates        *datemath.Parser
	clock        datemath.Clock
	previewCount int
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l log.Logger,
	repo repository.Repository,
	extractor *nlparse.Extractor,
	calendar gcalendar.Calendar,
	calendarID string,
	dates *datemath.Parser,
	clock datemath.Clock,
	previewCount int,
) *implUseCase {
	if clock == nil {
		clock = datemath.SystemClock
	}
	if previewCount <= 0 {
		previewCount = defaultPreviewCount
	}
	return &implUseCase{
		l:            l,
		repo:         repo,
		extractor:    extractor,
		calendar:     calendar,
		calendarID:   calendarID,
		dates:        dates,
		clock:        clock,
		previewCount: min(previewCount, maxPreviewCount),
	}
}
