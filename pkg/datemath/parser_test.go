package datemath_test

import (
	"testing"
	"time"

	"dothis/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	p, err := datemath.NewParser("")
	if err != nil {
		t.Fatalf("unexpected error for empty timezone: %v", err)
	}
	if p.Location() != time.Local {
		t.Errorf("empty timezone should map to time.Local, got %v", p.Location())
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "Next week", relative: "next  week", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Next month", relative: "next month", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "ISO date", relative: "2024-12-25", want: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{name: "Unknown", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextWeekday(t *testing.T) {
	parser := datemath.NewParserIn(time.UTC)
	wed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		target   time.Weekday
		skipWeek bool
		want     time.Time
	}{
		{name: "later this week", target: time.Friday, want: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
		{name: "same weekday goes a week out", target: time.Wednesday, want: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)},
		{name: "earlier weekday wraps", target: time.Monday, want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{name: "skip week", target: time.Friday, skipWeek: true, want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.NextWeekday(tt.target, wed, tt.skipWeek)
			if !got.Equal(tt.want) {
				t.Errorf("NextWeekday() = %v, want %v", got, tt.want)
			}
			if got.Weekday() != tt.target {
				t.Errorf("NextWeekday() weekday = %v, want %v", got.Weekday(), tt.target)
			}
		})
	}
}

func TestMonthDay(t *testing.T) {
	parser := datemath.NewParserIn(time.UTC)
	base := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month time.Month
		day   int
		want  time.Time
	}{
		{name: "later this year", month: time.December, day: 25, want: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{name: "today stays this year", month: time.May, day: 10, want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "past rolls to next year", month: time.January, day: 3, want: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)},
		{name: "overflow normalises", month: time.June, day: 31, want: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.MonthDay(tt.month, tt.day, base); !got.Equal(tt.want) {
				t.Errorf("MonthDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumericDate(t *testing.T) {
	parser := datemath.NewParserIn(time.UTC)
	base := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		month, day, year int
		want             time.Time
	}{
		{name: "no year", month: 12, day: 25, want: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{name: "two digit year", month: 1, day: 2, year: 25, want: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{name: "four digit year", month: 3, day: 4, year: 2030, want: time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.NumericDate(tt.month, tt.day, tt.year, base); !got.Equal(tt.want) {
				t.Errorf("NumericDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthFromName(t *testing.T) {
	tests := []struct {
		in   string
		want time.Month
		ok   bool
	}{
		{"Dec", time.December, true},
		{"september", time.September, true},
		{"Sept", time.September, true},
		{"ma", 0, false},
		{"foo", 0, false},
	}
	for _, tt := range tests {
		got, ok := datemath.MonthFromName(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MonthFromName(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	if got := datemath.FixedClock(at).Now(); !got.Equal(at) {
		t.Errorf("FixedClock.Now() = %v, want %v", got, at)
	}
}
