package recurrence

import (
	"fmt"
	"slices"
	"time"
)

// Preset returns the default config for a pattern as picked on day today.
// Custom comes back with interval 1 and no days.
func Preset(p Pattern, today time.Time) Config {
	cfg := Config{Pattern: p}
	switch p {
	case PatternDaily:
		cfg.Interval = 1
	case PatternWeekdays:
		cfg.DaysOfWeek = []int{1, 2, 3, 4, 5}
	case PatternWeekly:
		cfg.Interval = 1
		cfg.DaysOfWeek = []int{int(today.Weekday())}
	case PatternBiweekly:
		cfg.Interval = 2
		cfg.DaysOfWeek = []int{int(today.Weekday())}
	case PatternMonthly:
		cfg.Interval = 1
		cfg.DayOfMonth = today.Day()
	case PatternCustom:
		cfg.Interval = 1
	}
	return cfg
}

// Validate checks the ranges of every set field.
func (c Config) Validate() error {
	if c.Pattern != "" && !slices.Contains(Patterns, c.Pattern) {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, c.Pattern)
	}
	if c.Interval < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, c.Interval)
	}
	for _, d := range c.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, d)
		}
	}
	if c.DayOfMonth < 0 || c.DayOfMonth > 31 {
		return fmt.Errorf("%w: %d", ErrInvalidDayOfMonth, c.DayOfMonth)
	}
	if c.Occurrences < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOccurrences, c.Occurrences)
	}
	if c.Time != "" {
		if _, _, ok := ParseClock(c.Time); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidTime, c.Time)
		}
	}
	return nil
}
