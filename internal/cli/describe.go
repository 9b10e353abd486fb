package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dothis/pkg/recurrence"
)

type describeView struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Description string `json:"description" yaml:"description"`
	RRule       string `json:"rrule,omitempty" yaml:"rrule,omitempty"`
}

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	var sched recurrenceFlags

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe a schedule in plain English and as an RRULE",
		Long: `Describe a repeat schedule in plain English and as an RFC 5545 RRULE line.

Examples:
  dothis describe --pattern biweekly --time 15:00
  dothis describe --pattern custom --days mon,wed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, clock, err := opts.dates()
			if err != nil {
				return err
			}

			cfg, err := sched.config(cmd, dates, clock.Now())
			if err != nil {
				return err
			}

			rule, _ := recurrence.RRule(cfg)
			view := describeView{
				Pattern:     string(cfg.Pattern),
				Description: recurrence.Describe(cfg),
				RRule:       rule,
			}

			if opts.output != formatText {
				return writeStructured(cmd.OutOrStdout(), opts.output, view)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render(view.Description))
			if view.RRule != "" {
				fmt.Fprintln(w, dimStyle.Render(view.RRule))
			}
			return nil
		},
	}

	sched.register(cmd)
	return cmd
}
