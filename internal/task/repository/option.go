package repository

import (
	"time"

	"dothis/pkg/recurrence"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID              string
	UserID          string
	SeriesID        string
	SeriesIndex     int
	Title           string
	Description     string
	Priority        string
	Project         string
	Tags            []string
	DueDate         *time.Time
	DueTime         string
	DurationMinutes int
	Recurrence      recurrence.Config
	CalendarEventID string
}

// GetOneTaskOptions fetches a single Task. Returns a zero Task when not found.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID    string
	Project   string
	Completed *bool
	Limit     int
	Offset    int
}

type CompleteTaskOptions struct {
	ID          string
	UserID      string
	CompletedAt time.Time
}

type UpdateRecurrenceOptions struct {
	ID         string
	UserID     string
	Recurrence recurrence.Config
}

type DeleteTaskOptions struct {
	ID     string
	UserID string
}
