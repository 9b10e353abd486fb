package gcalendar

import (
	"context"
	"time"
)

// Calendar is the subset of the Calendar API the task store pushes to.
type Calendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CreateEventRequest is the input for creating a Google Calendar event.
// AllDay events use only the date part of StartTime and EndTime.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string   // IANA name, required by the API for recurring events
	Recurrence  []string // RRULE lines
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Recurring   bool
}
