package task

import "errors"

var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrEmptyTitle        = errors.New("no title left after parsing")
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskCompleted     = errors.New("task already completed")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrInvalidPriority   = errors.New("invalid priority")
)
