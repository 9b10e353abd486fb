package recurrence

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"dothis/pkg/datemath"
)

// ParseDays reads a comma-separated day list: "mon,wed", "Monday, Friday" or "1,3".
// The result is sorted and free of duplicates.
func ParseDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := parseDay(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	slices.Sort(days)
	return slices.Compact(days), nil
}

func parseDay(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, n)
		}
		return n, nil
	}
	if wd, ok := datemath.WeekdayFromName(s); ok {
		return int(wd), nil
	}
	for i, abbrev := range dayAbbrev {
		if strings.EqualFold(abbrev, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDayOfWeek, s)
}
