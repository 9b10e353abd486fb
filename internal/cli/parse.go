package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"dothis/pkg/datemath"
	"dothis/pkg/nlparse"
	"dothis/pkg/recurrence"
)

// parseView is the printable form of an extraction result.
type parseView struct {
	Success         bool     `json:"success" yaml:"success"`
	Title           string   `json:"title" yaml:"title"`
	Date            string   `json:"date,omitempty" yaml:"date,omitempty"`
	Time            string   `json:"time,omitempty" yaml:"time,omitempty"`
	Priority        string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Project         string   `json:"project,omitempty" yaml:"project,omitempty"`
	Tags            []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
	Recurrence      string   `json:"recurrence,omitempty" yaml:"recurrence,omitempty"`
	Confidence      float64  `json:"confidence" yaml:"confidence"`
	Suggestions     []string `json:"suggestions" yaml:"suggestions"`
}

func newParseView(res nlparse.Result) parseView {
	v := parseView{
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
	if v.Suggestions == nil {
		v.Suggestions = []string{}
	}
	if res.Task.Date != nil {
		v.Date = res.Task.Date.Format(datemath.ISODate)
	}
	if res.Task.Duration != nil {
		v.DurationMinutes = *res.Task.Duration
	}
	return v
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Extract a structured task from natural-language text",
		Long: `Extract title, date, time, priority, #project, duration and recurrence
from one line of text. Multiple arguments are joined with spaces.

Examples:
  dothis parse "Call mom tomorrow at 3pm #family urgent"
  dothis parse --now 2024-05-01 -o json Team meeting every monday at 10am`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, clock, err := opts.dates()
			if err != nil {
				return err
			}

			extractor := nlparse.New(nlparse.WithClock(clock), nlparse.WithLocation(dates.Location()))
			view := newParseView(extractor.Parse(strings.Join(args, " ")))

			if opts.output != formatText {
				return writeStructured(cmd.OutOrStdout(), opts.output, view)
			}
			printParseView(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func printParseView(w io.Writer, v parseView) {
	if !v.Success {
		fmt.Fprintln(w, warnStyle.Render("No task title found."))
	}

	field(w, "Title", v.Title)
	if v.Date != "" {
		field(w, "Date", v.Date)
	}
	if v.Time != "" {
		field(w, "Time", recurrence.FormatTime(v.Time))
	}
	field(w, "Priority", v.Priority)
	if v.Project != "" {
		field(w, "Project", "#"+v.Project)
	}
	field(w, "Tags", strings.Join(v.Tags, ", "))
	if v.DurationMinutes > 0 {
		field(w, "Duration", fmt.Sprintf("%d min", v.DurationMinutes))
	}
	field(w, "Repeats", v.Recurrence)
	field(w, "Confidence", fmt.Sprintf("%.0f%%", v.Confidence*100))

	for _, s := range v.Suggestions {
		fmt.Fprintln(w, dimStyle.Render("  hint: "+s))
	}
}
