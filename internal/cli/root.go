// Package cli implements the dothis command line.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dothis/pkg/datemath"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	output   string
	timezone string
	now      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dothis",
		Short: "Natural-language task capture and recurring schedules",
		Long: `dothis turns one line of text such as "Call mom tomorrow at 3pm #family urgent"
into a structured task, and computes the occurrences of repeat schedules.

Run "dothis parse" to try the extractor, "dothis next" and "dothis describe"
to work with schedules, and "dothis serve-mcp" to expose both as MCP tools.
The HTTP API is a separate binary built from cmd/api.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateOutput(opts.output)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", formatText, "output format: text, json or yaml")
	flags.StringVar(&opts.timezone, "timezone", "", "IANA timezone for relative dates (default: local)")
	flags.StringVar(&opts.now, "now", "", "reference time as RFC 3339 or YYYY-MM-DD (default: current time)")

	cmd.AddCommand(
		newParseCmd(opts),
		newNextCmd(opts),
		newDescribeCmd(opts),
		newServeMCPCmd(opts),
		newGcalAuthCmd(),
		newVersionCmd(),
	)
	return cmd
}

// dates builds the date parser and clock selected by --timezone and --now.
func (o *rootOptions) dates() (*datemath.Parser, datemath.Clock, error) {
	p, err := datemath.NewParser(o.timezone)
	if err != nil {
		return nil, nil, err
	}
	if o.now == "" {
		return p, datemath.ClockFunc(func() time.Time { return time.Now().In(p.Location()) }), nil
	}

	now, err := time.Parse(time.RFC3339, o.now)
	if err == nil {
		return p, datemath.FixedClock(now.In(p.Location())), nil
	}
	now, err = time.ParseInLocation(datemath.ISODate, o.now, p.Location())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --now %q: want RFC 3339 or YYYY-MM-DD", o.now)
	}
	return p, datemath.FixedClock(now), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dothis %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
