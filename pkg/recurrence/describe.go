package recurrence

import (
	"fmt"
	"strings"
)

// Describe renders cfg for people, e.g. "Every 2 weeks at 3:00 PM".
func Describe(cfg Config) string {
	var desc string
	switch cfg.Pattern {
	case PatternNone, "":
		return "Does not repeat"
	case PatternDaily:
		desc = "Every day"
	case PatternWeekdays:
		desc = "Every weekday"
	case PatternWeekly:
		desc = "Every week"
	case PatternBiweekly:
		desc = "Every 2 weeks"
	case PatternMonthly:
		dom := cfg.DayOfMonth
		if dom <= 0 {
			dom = 1
		}
		desc = fmt.Sprintf("Every month on day %d", dom)
	case PatternCustom:
		switch {
		case cfg.Interval > 1:
			desc = fmt.Sprintf("Every %d days", cfg.Interval)
		case len(cfg.DaysOfWeek) > 0:
			names := make([]string, 0, len(cfg.DaysOfWeek))
			for _, d := range cfg.DaysOfWeek {
				if d >= 0 && d < len(dayAbbrev) {
					names = append(names, dayAbbrev[d])
				}
			}
			desc = "On " + strings.Join(names, ", ")
		default:
			desc = "Custom schedule"
		}
	default:
		return "Unknown"
	}

	if cfg.Time != "" {
		desc += " at " + FormatTime(cfg.Time)
	}
	return desc
}

// FormatTime turns "15:00" into "3:00 PM". Unparseable input is returned as is.
func FormatTime(hhmm string) string {
	h, m, ok := ParseClock(hhmm)
	if !ok {
		return hhmm
	}
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, meridiem)
}
