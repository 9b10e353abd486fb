package recurrence

import "time"

// Pattern is the kind of repeat schedule.
type Pattern string

const (
	PatternNone     Pattern = "none"
	PatternDaily    Pattern = "daily"
	PatternWeekdays Pattern = "weekdays"
	PatternWeekly   Pattern = "weekly"
	PatternBiweekly Pattern = "biweekly"
	PatternMonthly  Pattern = "monthly"
	PatternCustom   Pattern = "custom"
)

// Patterns lists every known pattern in picker order.
var Patterns = []Pattern{
	PatternNone,
	PatternDaily,
	PatternWeekdays,
	PatternWeekly,
	PatternBiweekly,
	PatternMonthly,
	PatternCustom,
}

// Config describes a repeat schedule. Zero values mean "unset".
type Config struct {
	Pattern     Pattern    `json:"pattern" yaml:"pattern"`
	Interval    int        `json:"interval,omitempty" yaml:"interval,omitempty"`
	DaysOfWeek  []int      `json:"days_of_week,omitempty" yaml:"days_of_week,omitempty"` // 0 = Sunday
	DayOfMonth  int        `json:"day_of_month,omitempty" yaml:"day_of_month,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Occurrences int        `json:"occurrences,omitempty" yaml:"occurrences,omitempty"`
	Time        string     `json:"time,omitempty" yaml:"time,omitempty"` // "HH:MM"
}

// Repeats reports whether the config produces occurrences at all.
func (c Config) Repeats() bool {
	return c.Pattern != "" && c.Pattern != PatternNone
}

var dayAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
