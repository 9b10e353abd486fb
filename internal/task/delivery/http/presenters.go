package http

import (
	"time"

	"dothis/internal/model"
	"dothis/internal/task"
	"dothis/pkg/nlparse"
	"dothis/pkg/recurrence"
	"dothis/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{Text: r.Text}
}

// recurrenceReq mirrors recurrence.Config with a plain-date end_date.
type recurrenceReq struct {
	Pattern     string `json:"pattern"      binding:"required,oneof=none daily weekdays weekly biweekly monthly custom"`
	Interval    int    `json:"interval"     binding:"omitempty,min=1,max=365"`
	DaysOfWeek  []int  `json:"days_of_week" binding:"omitempty,dive,min=0,max=6"`
	DayOfMonth  int    `json:"day_of_month" binding:"omitempty,min=1,max=31"`
	EndDate     string `json:"end_date"     example:"2024-12-31"`
	Occurrences int    `json:"occurrences"  binding:"omitempty,min=1"`
	Time        string `json:"time"         example:"09:00"`
}

func (h *handler) toConfig(r recurrenceReq) (recurrence.Config, error) {
	cfg := recurrence.Config{
		Pattern:     recurrence.Pattern(r.Pattern),
		Interval:    r.Interval,
		DaysOfWeek:  r.DaysOfWeek,
		DayOfMonth:  r.DayOfMonth,
		Occurrences: r.Occurrences,
		Time:        r.Time,
	}
	if r.EndDate != "" {
		end, err := h.parseDate(r.EndDate)
		if err != nil {
			return recurrence.Config{}, err
		}
		// The end date is inclusive of the whole day.
		end = h.dates.EndOfDay(end)
		cfg.EndDate = &end
	}
	return cfg, nil
}

type previewReq struct {
	Recurrence recurrenceReq `json:"recurrence"`
	From       string        `json:"from"  example:"2024-05-01"`
	Count      int           `json:"count" binding:"omitempty,min=1,max=50"`
}

type createReq struct {
	Text        string         `json:"text"        binding:"required,max=1000"`
	Description string         `json:"description" binding:"max=5000"`
	Priority    string         `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Recurrence  *recurrenceReq `json:"recurrence"`
	Calendar    bool           `json:"calendar"`
}

type listReq struct {
	Project   string `form:"project"`
	Completed *bool  `form:"completed"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		Project:   r.Project,
		Completed: r.Completed,
		Limit:     limit,
		Offset:    r.Offset,
	}
}

type updateRecurrenceReq struct {
	ID         string        `json:"-"` // populated from URI param
	Recurrence recurrenceReq `json:"recurrence"`
}

// --- Response DTOs ---

type parsedTaskResp struct {
	Title      string         `json:"title"`
	Date       *response.Date `json:"date,omitempty"`
	Time       string         `json:"time,omitempty"`
	Priority   string         `json:"priority,omitempty"`
	Project    string         `json:"project,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Duration   *int           `json:"duration,omitempty"`
	Recurrence string         `json:"recurrence,omitempty"`
}

type parseResp struct {
	Success     bool           `json:"success"`
	Task        parsedTaskResp `json:"task"`
	Confidence  float64        `json:"confidence"`
	Suggestions []string       `json:"suggestions"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	r := out.Result
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return parseResp{
		Success:     r.Success,
		Task:        newParsedTaskResp(r.Task),
		Confidence:  r.Confidence,
		Suggestions: suggestions,
	}
}

func newParsedTaskResp(t nlparse.ParsedTask) parsedTaskResp {
	return parsedTaskResp{
		Title:      t.Title,
		Date:       response.NewDate(t.Date),
		Time:       t.Time,
		Priority:   string(t.Priority),
		Project:    t.Project,
		Tags:       t.Tags,
		Duration:   t.Duration,
		Recurrence: string(t.Recurrence),
	}
}

type recurrenceResp struct {
	Pattern     string         `json:"pattern"`
	Interval    int            `json:"interval,omitempty"`
	DaysOfWeek  []int          `json:"days_of_week,omitempty"`
	DayOfMonth  int            `json:"day_of_month,omitempty"`
	EndDate     *response.Date `json:"end_date,omitempty"`
	Occurrences int            `json:"occurrences,omitempty"`
	Time        string         `json:"time,omitempty"`
	Description string         `json:"description"`
}

func newRecurrenceResp(cfg recurrence.Config) recurrenceResp {
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = recurrence.PatternNone
	}
	return recurrenceResp{
		Pattern:     string(pattern),
		Interval:    cfg.Interval,
		DaysOfWeek:  cfg.DaysOfWeek,
		DayOfMonth:  cfg.DayOfMonth,
		EndDate:     response.NewDate(cfg.EndDate),
		Occurrences: cfg.Occurrences,
		Time:        cfg.Time,
		Description: recurrence.Describe(cfg),
	}
}

type taskResp struct {
	ID              string         `json:"id"`
	SeriesID        string         `json:"series_id"`
	SeriesIndex     int            `json:"series_index"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	Priority        string         `json:"priority"`
	Project         string         `json:"project,omitempty"`
	Tags            []string       `json:"tags"`
	DueDate         *response.Date `json:"due_date,omitempty"`
	DueTime         string         `json:"due_time,omitempty"`
	DurationMinutes int            `json:"duration_minutes,omitempty"`
	Recurrence      recurrenceResp `json:"recurrence"`
	Completed       bool           `json:"completed"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	CalendarEventID string         `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:              t.ID,
		SeriesID:        t.SeriesID,
		SeriesIndex:     t.SeriesIndex,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        t.Priority,
		Project:         t.Project,
		Tags:            tags,
		DueDate:         response.NewDate(t.DueDate),
		DueTime:         t.DueTime,
		DurationMinutes: t.DurationMinutes,
		Recurrence:      newRecurrenceResp(t.Recurrence),
		Completed:       t.Completed,
		CompletedAt:     t.CompletedAt,
		CalendarEventID: t.CalendarEventID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

type createResp struct {
	Task        taskResp `json:"task"`
	Confidence  float64  `json:"confidence"`
	Suggestions []string `json:"suggestions"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	suggestions := out.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return createResp{
		Task:        newTaskResp(out.Task),
		Confidence:  out.Confidence,
		Suggestions: suggestions,
	}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type completeResp struct {
	Task taskResp  `json:"task"`
	Next *taskResp `json:"next,omitempty"`
}

func (h *handler) newCompleteResp(out task.CompleteOutput) completeResp {
	resp := completeResp{Task: newTaskResp(out.Task)}
	if out.Next != nil {
		next := newTaskResp(*out.Next)
		resp.Next = &next
	}
	return resp
}

type updateRecurrenceResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateRecurrenceResp(out task.UpdateRecurrenceOutput) updateRecurrenceResp {
	return updateRecurrenceResp{Task: newTaskResp(out.Task)}
}

type previewResp struct {
	Description string      `json:"description"`
	RRule       string      `json:"rrule,omitempty"`
	Dates       []time.Time `json:"dates"`
}

func (h *handler) newPreviewResp(out task.PreviewRecurrenceOutput) previewResp {
	dates := out.Dates
	if dates == nil {
		dates = []time.Time{}
	}
	return previewResp{
		Description: out.Description,
		RRule:       out.RRule,
		Dates:       dates,
	}
}
