package task

import (
	"time"

	"dothis/internal/model"
	"dothis/pkg/nlparse"
	"dothis/pkg/recurrence"
)

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
}

type CreateInput struct {
	Text        string
	Description string
	Priority    string             // overrides the parsed priority when set
	Recurrence  *recurrence.Config // overrides the inline recurrence when set
	Calendar    bool               // push to Google Calendar when the task has a date
}

type ListInput struct {
	Project   string
	Completed *bool
	Limit     int
	Offset    int
}

type UpdateRecurrenceInput struct {
	ID         string
	Recurrence recurrence.Config
}

type PreviewRecurrenceInput struct {
	Recurrence recurrence.Config
	From       *time.Time
	Count      int
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Result nlparse.Result
}

type CreateOutput struct {
	Task        model.Task
	Confidence  float64
	Suggestions []string
}

type DetailOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type CompleteOutput struct {
	Task model.Task
	Next *model.Task // nil when the series has ended
}

type UpdateRecurrenceOutput struct {
	Task model.Task
}

type PreviewRecurrenceOutput struct {
	Description string
	RRule       string
	Dates       []time.Time
}
