package recurrence

import "errors"

var (
	ErrUnknownPattern     = errors.New("unknown recurrence pattern")
	ErrInvalidInterval    = errors.New("interval must not be negative")
	ErrInvalidDayOfWeek   = errors.New("day of week must be between 0 and 6")
	ErrInvalidDayOfMonth  = errors.New("day of month must be between 1 and 31")
	ErrInvalidOccurrences = errors.New("occurrences must not be negative")
	ErrInvalidTime        = errors.New("time must be HH:MM")
)
