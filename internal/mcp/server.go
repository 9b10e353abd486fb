// Package mcp exposes the task parser and the recurrence engine as MCP
// (Model Context Protocol) tools.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"dothis/pkg/datemath"
	"dothis/pkg/nlparse"
	"dothis/pkg/recurrence"
)

const (
	defaultCount = 5
	maxCount     = 50
)

// Server wraps the parser and recurrence engine and exposes them as MCP tools.
type Server struct {
	server    *gomcp.Server
	extractor *nlparse.Extractor
	dates     *datemath.Parser
	clock     datemath.Clock
}

// NewServer creates an MCP server. Relative dates resolve against clock in the dates location.
func NewServer(dates *datemath.Parser, clock datemath.Clock, version string) *Server {
	if version == "" {
		version = "dev"
	}
	if clock == nil {
		clock = datemath.SystemClock
	}

	s := &Server{
		extractor: nlparse.New(nlparse.WithClock(clock), nlparse.WithLocation(dates.Location())),
		dates:     dates,
		clock:     clock,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "dothis", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run serves on stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type parseTaskInput struct {
	Text string `json:"text" jsonschema:"one line of task text, e.g. Call mom tomorrow at 3pm #family urgent"`
}

type parseTaskOutput struct {
	Success         bool     `json:"success"`
	Title           string   `json:"title"`
	Date            string   `json:"date,omitempty"`
	Time            string   `json:"time,omitempty"`
	Priority        string   `json:"priority,omitempty"`
	Project         string   `json:"project,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Recurrence      string   `json:"recurrence,omitempty"`
	Confidence      float64  `json:"confidence"`
	Suggestions     []string `json:"suggestions"`
}

type recurrenceInput struct {
	Pattern     string `json:"pattern" jsonschema:"one of none, daily, weekdays, weekly, biweekly, monthly, custom"`
	Interval    int    `json:"interval,omitempty" jsonschema:"step in days (daily, custom) or 2 for every other week"`
	DaysOfWeek  []int  `json:"days_of_week,omitempty" jsonschema:"0 = Sunday ... 6 = Saturday"`
	DayOfMonth  int    `json:"day_of_month,omitempty" jsonschema:"1-31, monthly only"`
	EndDate     string `json:"end_date,omitempty" jsonschema:"last allowed date, YYYY-MM-DD"`
	Occurrences int    `json:"occurrences,omitempty" jsonschema:"maximum number of occurrences"`
	Time        string `json:"time,omitempty" jsonschema:"time of day as HH:MM"`
}

type nextOccurrenceInput struct {
	Recurrence recurrenceInput `json:"recurrence"`
	From       string          `json:"from,omitempty" jsonschema:"start date: YYYY-MM-DD, today, tomorrow, next friday, in 3 days. Defaults to now."`
	Count      int             `json:"count,omitempty" jsonschema:"how many occurrences to list, 1-50, default 5"`
}

type nextOccurrenceOutput struct {
	Description string   `json:"description"`
	Dates       []string `json:"dates"`
}

type describeRecurrenceOutput struct {
	Description string `json:"description"`
	RRule       string `json:"rrule,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "parse_task",
		Description: "Parse one line of natural-language task text into title, date, time, priority, #project, duration and recurrence, with a confidence score.",
	}, s.handleParseTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "next_occurrence",
		Description: "List the next occurrences of a recurrence schedule after a start date.",
	}, s.handleNextOccurrence)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "describe_recurrence",
		Description: "Describe a recurrence schedule in plain English and as an RFC 5545 RRULE.",
	}, s.handleDescribeRecurrence)
}

// --- Tool handlers ---

func (s *Server) handleParseTask(_ context.Context, _ *gomcp.CallToolRequest, input parseTaskInput) (*gomcp.CallToolResult, parseTaskOutput, error) {
	res := s.extractor.Parse(input.Text)

	out := parseTaskOutput{
		Success:     res.Success,
		Title:       res.Task.Title,
		Time:        res.Task.Time,
		Priority:    string(res.Task.Priority),
		Project:     res.Task.Project,
		Tags:        res.Task.Tags,
		Recurrence:  string(res.Task.Recurrence),
		Confidence:  res.Confidence,
		Suggestions: res.Suggestions,
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	if res.Task.Date != nil {
		out.Date = res.Task.Date.Format(datemath.ISODate)
	}
	if res.Task.Duration != nil {
		out.DurationMinutes = *res.Task.Duration
	}
	return nil, out, nil
}

func (s *Server) handleNextOccurrence(_ context.Context, _ *gomcp.CallToolRequest, input nextOccurrenceInput) (*gomcp.CallToolResult, nextOccurrenceOutput, error) {
	cfg, err := s.toConfig(input.Recurrence)
	if err != nil {
		return errorResult(err.Error()), emptyNextOccurrenceOutput(), nil
	}

	from := s.clock.Now().In(s.dates.Location())
	if input.From != "" {
		from, err = s.dates.Parse(input.From, s.clock.Now())
		if err != nil {
			return errorResult(fmt.Sprintf("parsing from: %s", err)), emptyNextOccurrenceOutput(), nil
		}
	}

	count := input.Count
	if count <= 0 {
		count = defaultCount
	}
	count = min(count, maxCount)

	dates := recurrence.Upcoming(cfg, from, count)
	out := nextOccurrenceOutput{
		Description: recurrence.Describe(cfg),
		Dates:       make([]string, len(dates)),
	}
	for i, d := range dates {
		out.Dates[i] = d.Format(time.RFC3339)
	}
	return nil, out, nil
}

func (s *Server) handleDescribeRecurrence(_ context.Context, _ *gomcp.CallToolRequest, input recurrenceInput) (*gomcp.CallToolResult, describeRecurrenceOutput, error) {
	cfg, err := s.toConfig(input)
	if err != nil {
		return errorResult(err.Error()), describeRecurrenceOutput{}, nil
	}

	rule, _ := recurrence.RRule(cfg)
	return nil, describeRecurrenceOutput{
		Description: recurrence.Describe(cfg),
		RRule:       rule,
	}, nil
}

// --- Helpers ---

func (s *Server) toConfig(in recurrenceInput) (recurrence.Config, error) {
	cfg := recurrence.Config{
		Pattern:     recurrence.Pattern(in.Pattern),
		Interval:    in.Interval,
		DaysOfWeek:  in.DaysOfWeek,
		DayOfMonth:  in.DayOfMonth,
		Occurrences: in.Occurrences,
		Time:        in.Time,
	}
	if cfg.Pattern == "" {
		cfg.Pattern = recurrence.PatternNone
	}
	if in.EndDate != "" {
		end, err := time.ParseInLocation(datemath.ISODate, in.EndDate, s.dates.Location())
		if err != nil {
			return recurrence.Config{}, fmt.Errorf("parsing end_date: %w", err)
		}
		end = s.dates.EndOfDay(end)
		cfg.EndDate = &end
	}
	if err := cfg.Validate(); err != nil {
		return recurrence.Config{}, err
	}
	return cfg, nil
}

// emptyNextOccurrenceOutput keeps dates a JSON array so the result still matches the output schema.
func emptyNextOccurrenceOutput() nextOccurrenceOutput {
	return nextOccurrenceOutput{Dates: []string{}}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
