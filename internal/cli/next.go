package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"dothis/pkg/recurrence"
)

const (
	defaultNextCount = 5
	maxNextCount     = 50
)

type nextView struct {
	Description string   `json:"description" yaml:"description"`
	RRule       string   `json:"rrule,omitempty" yaml:"rrule,omitempty"`
	Dates       []string `json:"dates" yaml:"dates"`
}

func newNextCmd(opts *rootOptions) *cobra.Command {
	var (
		sched recurrenceFlags
		from  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "List the upcoming occurrences of a schedule",
		Long: `List the occurrences of a repeat schedule after a start date.

Examples:
  dothis next --pattern weekdays --time 09:00
  dothis next --pattern monthly --day-of-month 31 --from 2024-01-01 --count 6
  dothis next --config-file standup.yaml --end "in 3 weeks"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, clock, err := opts.dates()
			if err != nil {
				return err
			}
			now := clock.Now()

			cfg, err := sched.config(cmd, dates, now)
			if err != nil {
				return err
			}

			start := now
			if from != "" {
				if start, err = dates.Parse(from, now); err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
			}
			if count <= 0 || count > maxNextCount {
				return fmt.Errorf("--count must be between 1 and %d", maxNextCount)
			}

			occurrences := recurrence.Upcoming(cfg, start, count)
			rule, _ := recurrence.RRule(cfg)
			view := nextView{
				Description: recurrence.Describe(cfg),
				RRule:       rule,
				Dates:       make([]string, len(occurrences)),
			}
			for i, t := range occurrences {
				view.Dates[i] = t.Format(time.RFC3339)
			}

			if opts.output != formatText {
				return writeStructured(cmd.OutOrStdout(), opts.output, view)
			}
			printOccurrences(cmd.OutOrStdout(), cfg, view.Description, occurrences)
			return nil
		},
	}

	sched.register(cmd)
	cmd.Flags().StringVar(&from, "from", "", "start date (default: now)")
	cmd.Flags().IntVarP(&count, "count", "n", defaultNextCount, "number of occurrences to list")
	return cmd
}

func printOccurrences(w io.Writer, cfg recurrence.Config, description string, occurrences []time.Time) {
	fmt.Fprintln(w, headerStyle.Render(description))
	if len(occurrences) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No upcoming occurrences."))
		return
	}

	layout := "Mon Jan 2 2006"
	if cfg.Time != "" {
		layout += " 3:04 PM"
	}
	for i, t := range occurrences {
		fmt.Fprintf(w, "%3d. %s\n", i+1, t.Format(layout))
	}
}
