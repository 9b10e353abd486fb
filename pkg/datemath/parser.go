package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser does day-granularity date arithmetic in a single location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// "" and "Local" both mean the process' local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser bound to loc.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{location: loc}
}

// Location returns the parser's location.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute start-of-day time.
// Accepts the Relative keywords, "in N days|weeks|months", "next <weekday>" and ISO dates.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if t, ok := p.Relative(relative, baseTime); ok {
		return t, nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	if t, err := time.ParseInLocation(ISODate, relative, p.location); err == nil {
		return t, nil
	}

	return baseTime, fmt.Errorf("unrecognised date %q", relative)
}

// Relative resolves today, tomorrow, yesterday, next week (+7 days) and next month (+1 month).
func (p *Parser) Relative(keyword string, baseTime time.Time) (time.Time, bool) {
	switch strings.Join(strings.Fields(strings.ToLower(keyword)), " ") {
	case "today":
		return p.StartOfDay(baseTime), true
	case "tomorrow":
		return p.StartOfDay(baseTime).AddDate(0, 0, 1), true
	case "yesterday":
		return p.StartOfDay(baseTime).AddDate(0, 0, -1), true
	case "next week":
		return p.StartOfDay(baseTime).AddDate(0, 0, 7), true
	case "next month":
		return p.StartOfDay(baseTime).AddDate(0, 1, 0), true
	}
	return time.Time{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]
	start := p.StartOfDay(baseTime)

	switch {
	case strings.HasPrefix(unit, "day"):
		return start.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return start.AddDate(0, 0, amount*7), nil
	default:
		return start.AddDate(0, amount, 0), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := WeekdayFromName(dayName)
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return p.NextWeekday(target, baseTime, false), nil
}

// NextWeekday returns the first target weekday strictly after baseTime's day.
// skipWeek pushes the result one more week out ("next friday" said on a Monday).
func (p *Parser) NextWeekday(target time.Weekday, baseTime time.Time, skipWeek bool) time.Time {
	start := p.StartOfDay(baseTime)
	delta := int(target) - int(start.Weekday())
	if delta <= 0 {
		delta += 7
	}
	if skipWeek {
		delta += 7
	}
	return start.AddDate(0, 0, delta)
}

// MonthDay returns month/day in baseTime's year, or the following year when that is before today.
// Days past the end of the month roll forward the way time.Date normalises them.
func (p *Parser) MonthDay(month time.Month, day int, baseTime time.Time) time.Time {
	today := p.StartOfDay(baseTime)
	t := time.Date(today.Year(), month, day, 0, 0, 0, 0, p.location)
	if t.Before(today) {
		t = time.Date(today.Year()+1, month, day, 0, 0, 0, 0, p.location)
	}
	return t
}

// NumericDate builds a date from month/day/year parts. year <= 0 means baseTime's year,
// two-digit years are read as 20yy.
func (p *Parser) NumericDate(month, day, year int, baseTime time.Time) time.Time {
	switch {
	case year <= 0:
		year = baseTime.In(p.location).Year()
	case year < 100:
		year += 2000
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
