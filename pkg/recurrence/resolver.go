package recurrence

import (
	"regexp"
	"strconv"
	"time"

	"dothis/pkg/datemath"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock splits "HH:MM" into hour and minute.
func ParseClock(s string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Next returns the occurrence following from. ok is false when the pattern is
// none or unknown, or the result falls after EndDate.
//
// A custom pattern without an interval does not advance: the result is from's
// own day. Use Advance when that must count as "no next date".
// Occurrences is not consulted here.
func Next(cfg Config, from time.Time) (time.Time, bool) {
	next := midnight(from)

	switch cfg.Pattern {
	case PatternDaily:
		next = next.AddDate(0, 0, max(cfg.Interval, 1))
	case PatternWeekdays:
		for i := 0; i < 7; i++ {
			next = next.AddDate(0, 0, 1)
			if wd := next.Weekday(); wd != time.Saturday && wd != time.Sunday {
				break
			}
		}
	case PatternWeekly, PatternBiweekly:
		next = next.AddDate(0, 0, 7*weeks(cfg))
	case PatternMonthly:
		dom := cfg.DayOfMonth
		if dom <= 0 {
			dom = next.Day()
		}
		// time.Date normalises a missing day into the following month.
		next = time.Date(next.Year(), next.Month()+1, dom, 0, 0, 0, 0, next.Location())
	case PatternCustom:
		if cfg.Interval > 0 {
			next = next.AddDate(0, 0, cfg.Interval)
		}
	default:
		return time.Time{}, false
	}

	if h, m, ok := ParseClock(cfg.Time); ok {
		next = time.Date(next.Year(), next.Month(), next.Day(), h, m, 0, 0, next.Location())
	}

	if cfg.EndDate != nil && next.After(*cfg.EndDate) {
		return time.Time{}, false
	}
	return next, true
}

// weeks is 2 for biweekly schedules and weekly{interval: 2}, otherwise 1.
func weeks(cfg Config) int {
	if cfg.Interval == 2 || (cfg.Pattern == PatternBiweekly && cfg.Interval == 0) {
		return 2
	}
	return 1
}

// Advance is Next, but also reports false when the schedule would not move
// past from's day.
func Advance(cfg Config, from time.Time) (time.Time, bool) {
	next, ok := Next(cfg, from)
	if !ok || !midnight(next).After(midnight(from)) {
		return time.Time{}, false
	}
	return next, true
}

// Upcoming lists up to n occurrences after from. It stops early on the end
// date, the occurrence cap or a schedule that does not advance.
func Upcoming(cfg Config, from time.Time, n int) []time.Time {
	if cfg.Occurrences > 0 && n > cfg.Occurrences {
		n = cfg.Occurrences
	}

	out := make([]time.Time, 0, max(n, 0))
	cur := from
	for len(out) < n {
		next, ok := Advance(cfg, cur)
		if !ok {
			break
		}
		out = append(out, next)
		cur = next
	}
	return out
}

// Resolver computes occurrences relative to an injected clock.
type Resolver struct {
	clock datemath.Clock
}

// NewResolver creates a Resolver. A nil clock reads the system time.
func NewResolver(clock datemath.Clock) *Resolver {
	if clock == nil {
		clock = datemath.SystemClock
	}
	return &Resolver{clock: clock}
}

// Next returns the occurrence after now.
func (r *Resolver) Next(cfg Config) (time.Time, bool) {
	return Next(cfg, r.clock.Now())
}

// Upcoming lists up to n occurrences after now.
func (r *Resolver) Upcoming(cfg Config, n int) []time.Time {
	return Upcoming(cfg, r.clock.Now(), n)
}
