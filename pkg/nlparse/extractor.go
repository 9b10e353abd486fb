package nlparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"dothis/pkg/datemath"
)

// Extractor turns one line of free text into a ParsedTask. It holds no mutable
// state and is safe for concurrent use.
type Extractor struct {
	clock datemath.Clock
	dates *datemath.Parser
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the source of "now" used for relative dates.
func WithClock(c datemath.Clock) Option {
	return func(e *Extractor) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithLocation sets the location dates are resolved in.
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) {
		e.dates = datemath.NewParserIn(loc)
	}
}

// New creates an Extractor reading the system clock in the local zone.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		clock: datemath.SystemClock,
		dates: datemath.NewParserIn(time.Local),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = New()

// Parse runs the default Extractor.
func Parse(input string) Result {
	return defaultExtractor.Parse(input)
}

// Parse extracts structured fields from input. It never fails; an input with
// nothing left for a title yields Success false.
func (e *Extractor) Parse(input string) Result {
	s := &state{
		title: input,
		now:   e.clock.Now().In(e.dates.Location()),
		dates: e.dates,
	}

	points := 0
	for _, st := range pipeline {
		if st.apply(s) {
			points += st.points
		}
	}

	s.task.Title = CleanTitle(s.title)

	var suggestions []string
	if s.task.Date == nil {
		suggestions = append(suggestions, SuggestDate)
	}
	if s.task.Time == "" {
		suggestions = append(suggestions, SuggestTime)
	}
	if utf8.RuneCountInString(s.task.Title) < 5 {
		suggestions = append(suggestions, SuggestDetail)
	}

	return Result{
		Success:     s.task.Title != "",
		Task:        s.task,
		Confidence:  float64(min(points, 100)) / 100,
		Suggestions: suggestions,
	}
}

// state is the working copy threaded through the pipeline. Each stage removes
// what it consumed from title.
type state struct {
	title string
	now   time.Time
	dates *datemath.Parser
	task  ParsedTask
}

// cut blanks out title[start:end].
func (s *state) cut(start, end int) {
	s.title = s.title[:start] + " " + s.title[end:]
}

type stage struct {
	points int // hundredths of confidence
	apply  func(s *state) bool
}

// pipeline order matters: later patterns assume earlier tokens are gone.
var pipeline = []stage{
	{points: 10, apply: extractProject},
	{points: 10, apply: extractRecurrence},
	{points: 10, apply: extractPriority},
	{points: 10, apply: extractDuration},
	{points: 15, apply: extractTime},
	{points: 15, apply: extractRelativeDate},
	{points: 10, apply: extractWeekday},
	{points: 10, apply: extractMonthDate},
	{points: 10, apply: extractNumericDate},
}

func extractProject(s *state) bool {
	matches := projectRe.FindAllStringSubmatch(s.title, -1)
	if len(matches) == 0 {
		return false
	}
	s.task.Project = matches[0][1]
	for _, m := range matches {
		s.task.Tags = append(s.task.Tags, m[1])
	}
	s.title = projectRe.ReplaceAllString(s.title, " ")
	return true
}

func matchKeyword[T any](s *state, table []keyword[T]) (T, bool) {
	for _, k := range table {
		if k.re.MatchString(s.title) {
			s.title = k.re.ReplaceAllString(s.title, " ")
			return k.value, true
		}
	}
	var zero T
	return zero, false
}

func extractRecurrence(s *state) bool {
	r, ok := matchKeyword(s, recurrenceWords)
	if ok {
		s.task.Recurrence = r
	}
	return ok
}

func extractPriority(s *state) bool {
	p, ok := matchKeyword(s, priorityWords)
	if ok {
		s.task.Priority = p
	}
	return ok
}

func extractDuration(s *state) bool {
	m := durationRe.FindStringSubmatchIndex(s.title)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(s.title[m[2]:m[3]])
	if err != nil {
		return false
	}
	if unit := strings.ToLower(s.title[m[4]:m[5]]); strings.HasPrefix(unit, "h") {
		n *= 60
	}
	s.task.Duration = &n
	s.cut(m[0], m[1])
	return true
}

func extractTime(s *state) bool {
	for _, re := range timeRes {
		m := re.FindStringSubmatchIndex(s.title)
		if m == nil {
			continue
		}
		clock, ok := clockTime(group(s.title, m, 1), group(s.title, m, 2), group(s.title, m, 3))
		if !ok {
			continue
		}
		s.task.Time = clock
		s.cut(m[0], m[1])
		return true
	}
	return false
}

// clockTime normalises hour/minute/meridiem to "HH:MM". Without a meridiem the
// hour is taken as written on a 24-hour clock, so "at 3" is 03:00.
func clockTime(hourStr, minuteStr, meridiem string) (string, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return "", false
	}
	minute := 0
	if minuteStr != "" {
		if minute, err = strconv.Atoi(minuteStr); err != nil || minute > 59 {
			return "", false
		}
	}

	switch strings.ToLower(meridiem) {
	case "pm":
		if hour < 1 || hour > 12 {
			return "", false
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour < 1 || hour > 12 {
			return "", false
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return "", false
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

func extractRelativeDate(s *state) bool {
	if s.task.Date != nil {
		return false
	}
	phrase, ok := matchKeyword(s, relativeWords)
	if !ok {
		return false
	}
	d, ok := s.dates.Relative(phrase, s.now)
	if !ok {
		return false
	}
	s.task.Date = &d
	return true
}

func extractWeekday(s *state) bool {
	if s.task.Date != nil {
		return false
	}
	for _, wp := range weekdayPhrases {
		loc := wp.re.FindStringIndex(s.title)
		if loc == nil {
			continue
		}
		d := s.dates.NextWeekday(wp.day, s.now, wp.skipWeek)
		s.task.Date = &d
		s.cut(loc[0], loc[1])
		return true
	}
	return false
}

func extractMonthDate(s *state) bool {
	if s.task.Date != nil {
		return false
	}
	m := monthDateRe.FindStringSubmatchIndex(s.title)
	if m == nil {
		return false
	}
	month, ok := datemath.MonthFromName(group(s.title, m, 1))
	if !ok {
		return false
	}
	day, err := strconv.Atoi(group(s.title, m, 2))
	if err != nil || day < 1 || day > 31 {
		return false
	}
	d := s.dates.MonthDay(month, day, s.now)
	s.task.Date = &d
	s.cut(m[0], m[1])
	return true
}

func extractNumericDate(s *state) bool {
	if s.task.Date != nil {
		return false
	}
	m := numericDateRe.FindStringSubmatchIndex(s.title)
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(group(s.title, m, 1))
	day, _ := strconv.Atoi(group(s.title, m, 2))
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	year := 0
	if y := group(s.title, m, 3); y != "" {
		year, _ = strconv.Atoi(y)
	}
	d := s.dates.NumericDate(month, day, year, s.now)
	s.task.Date = &d
	s.cut(m[0], m[1])
	return true
}

// group returns submatch i from a FindStringSubmatchIndex result, or "".
func group(src string, m []int, i int) string {
	if 2*i+1 >= len(m) || m[2*i] < 0 {
		return ""
	}
	return src[m[2*i]:m[2*i+1]]
}
