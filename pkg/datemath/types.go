package datemath

import (
	"strings"
	"time"
)

// ISODate is the layout accepted for explicit dates ("2024-05-01").
const ISODate = "2006-01-02"

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var monthPrefixes = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// WeekdayFromName resolves a full English day name ("Monday") to its weekday.
func WeekdayFromName(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// MonthFromName resolves an English month name or abbreviation by its three-letter prefix.
func MonthFromName(name string) (time.Month, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0, false
	}
	prefix := name[:3]
	for i, m := range monthPrefixes {
		if m == prefix {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}
