package http

import (
	"dothis/internal/task"
	"dothis/pkg/datemath"
	"dothis/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    task.UseCase
	dates *datemath.Parser
	clock datemath.Clock
}

// New creates a new HTTP handler for the task domain. dates resolves the
// date strings accepted in request bodies ("2024-05-01", "tomorrow", "next friday").
func New(l log.Logger, uc task.UseCase, dates *datemath.Parser, clock datemath.Clock) *handler {
	if clock == nil {
		clock = datemath.SystemClock
	}
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		clock: clock,
	}
}
