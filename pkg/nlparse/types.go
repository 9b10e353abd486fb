package nlparse

import "time"

// Priority is the urgency recognised in the text. Medium is never produced by the
// extractor; callers apply it as the default.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recurrence is the coarse repeat cadence recognised inline.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// ParsedTask holds the fields pulled out of one line of text.
type ParsedTask struct {
	Title      string     `json:"title" yaml:"title"`
	Date       *time.Time `json:"date,omitempty" yaml:"date,omitempty"`
	Time       string     `json:"time,omitempty" yaml:"time,omitempty"` // "HH:MM", 24-hour
	Priority   Priority   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Project    string     `json:"project,omitempty" yaml:"project,omitempty"`
	Tags       []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Duration   *int       `json:"duration,omitempty" yaml:"duration,omitempty"` // minutes
	Recurrence Recurrence `json:"recurrence,omitempty" yaml:"recurrence,omitempty"`
}

// Result wraps a ParsedTask with a heuristic confidence and UI hints.
type Result struct {
	Success     bool       `json:"success" yaml:"success"`
	Task        ParsedTask `json:"task" yaml:"task"`
	Confidence  float64    `json:"confidence" yaml:"confidence"`
	Suggestions []string   `json:"suggestions" yaml:"suggestions"`
}

// Suggestion texts.
const (
	SuggestDate   = `Add "tomorrow" or "next monday" for scheduling`
	SuggestTime   = `Add "at 3pm" to set a specific time`
	SuggestDetail = `Consider adding more details to your task`
)

// Examples are sample inputs shown next to an empty input box.
var Examples = []string{
	"Call mom tomorrow at 3pm",
	"Finish report by Friday",
	"Team meeting every Monday at 10am",
	"Buy groceries #shopping",
	"Workout for 30 minutes daily",
	"Submit proposal next week urgent",
}
