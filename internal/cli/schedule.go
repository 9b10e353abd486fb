package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dothis/pkg/datemath"
	"dothis/pkg/recurrence"
)

// recurrenceFlags describe a schedule on the command line. Flags that are set
// explicitly override the values read from --config-file.
type recurrenceFlags struct {
	configFile  string
	pattern     string
	interval    int
	days        string
	dayOfMonth  int
	end         string
	occurrences int
	time        string
}

func (f *recurrenceFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.configFile, "config-file", "", "YAML file holding a recurrence config")
	flags.StringVarP(&f.pattern, "pattern", "p", "", "none, daily, weekdays, weekly, biweekly, monthly or custom")
	flags.IntVar(&f.interval, "interval", 0, "step in days (daily, custom) or 2 for every other week")
	flags.StringVar(&f.days, "days", "", "days of the week, e.g. mon,wed or 1,3")
	flags.IntVar(&f.dayOfMonth, "day-of-month", 0, "day of the month for monthly schedules (1-31)")
	flags.StringVar(&f.end, "end", "", "last allowed date (YYYY-MM-DD, next friday, in 3 weeks)")
	flags.IntVar(&f.occurrences, "occurrences", 0, "maximum number of occurrences")
	flags.StringVar(&f.time, "time", "", "time of day as HH:MM")
}

// config assembles and validates the schedule. Relative end dates resolve against now.
func (f *recurrenceFlags) config(cmd *cobra.Command, dates *datemath.Parser, now time.Time) (recurrence.Config, error) {
	var cfg recurrence.Config
	if f.configFile != "" {
		data, err := os.ReadFile(f.configFile)
		if err != nil {
			return cfg, fmt.Errorf("reading recurrence config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing recurrence config %s: %w", f.configFile, err)
		}
		if cfg.EndDate != nil {
			d := *cfg.EndDate
			end := dates.EndOfDay(time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, dates.Location()))
			cfg.EndDate = &end
		}
	}

	flags := cmd.Flags()
	if flags.Changed("pattern") {
		cfg.Pattern = recurrence.Pattern(f.pattern)
	}
	if flags.Changed("interval") {
		cfg.Interval = f.interval
	}
	if flags.Changed("days") {
		days, err := recurrence.ParseDays(f.days)
		if err != nil {
			return cfg, err
		}
		cfg.DaysOfWeek = days
	}
	if flags.Changed("day-of-month") {
		cfg.DayOfMonth = f.dayOfMonth
	}
	if flags.Changed("end") {
		day, err := dates.Parse(f.end, now)
		if err != nil {
			return cfg, fmt.Errorf("invalid --end: %w", err)
		}
		end := dates.EndOfDay(day)
		cfg.EndDate = &end
	}
	if flags.Changed("occurrences") {
		cfg.Occurrences = f.occurrences
	}
	if flags.Changed("time") {
		cfg.Time = f.time
	}

	if cfg.Pattern == "" {
		return cfg, errors.New("a schedule needs --pattern or --config-file")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
