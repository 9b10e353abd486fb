package model

import (
	"time"

	"dothis/pkg/recurrence"
)

// Priority values stored on a task.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is one instance of a to-do. Instances of a recurring task share a SeriesID.
type Task struct {
	ID              string
	UserID          string
	SeriesID        string
	SeriesIndex     int // 1-based position in the series
	Title           string
	Description     string
	Priority        string
	Project         string
	Tags            []string
	DueDate         *time.Time // midnight, day granularity
	DueTime         string     // "HH:MM" or ""
	DurationMinutes int
	Recurrence      recurrence.Config
	Completed       bool
	CompletedAt     *time.Time
	CalendarEventID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsRecurring reports whether completing the task schedules another instance.
func (t Task) IsRecurring() bool {
	return t.Recurrence.Repeats()
}
