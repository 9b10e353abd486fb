package recurrence

import (
	"fmt"
	"strings"
)

// RRule renders cfg as an RFC 5545 RRULE line with the same cadence Next
// produces. ok is false for schedules with no cadence.
func RRule(cfg Config) (string, bool) {
	var parts []string
	switch cfg.Pattern {
	case PatternDaily:
		parts = append(parts, "FREQ=DAILY", fmt.Sprintf("INTERVAL=%d", max(cfg.Interval, 1)))
	case PatternWeekdays:
		parts = append(parts, "FREQ=WEEKLY", "BYDAY=MO,TU,WE,TH,FR")
	case PatternWeekly, PatternBiweekly:
		parts = append(parts, "FREQ=WEEKLY", fmt.Sprintf("INTERVAL=%d", weeks(cfg)))
	case PatternMonthly:
		parts = append(parts, "FREQ=MONTHLY")
		if cfg.DayOfMonth > 0 {
			parts = append(parts, fmt.Sprintf("BYMONTHDAY=%d", cfg.DayOfMonth))
		}
	case PatternCustom:
		if cfg.Interval <= 0 {
			return "", false
		}
		parts = append(parts, "FREQ=DAILY", fmt.Sprintf("INTERVAL=%d", cfg.Interval))
	default:
		return "", false
	}

	if cfg.EndDate != nil {
		parts = append(parts, "UNTIL="+cfg.EndDate.UTC().Format("20060102T150405Z"))
	} else if cfg.Occurrences > 0 {
		parts = append(parts, fmt.Sprintf("COUNT=%d", cfg.Occurrences))
	}
	return "RRULE:" + strings.Join(parts, ";"), true
}
