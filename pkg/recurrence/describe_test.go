package recurrence_test

import (
	"errors"
	"testing"
	"time"

	"dothis/pkg/recurrence"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		cfg  recurrence.Config
		want string
	}{
		{recurrence.Config{Pattern: recurrence.PatternNone, Time: "10:00"}, "Does not repeat"},
		{recurrence.Config{Pattern: recurrence.PatternDaily}, "Every day"},
		{recurrence.Config{Pattern: recurrence.PatternWeekdays, Time: "08:00"}, "Every weekday at 8:00 AM"},
		{recurrence.Config{Pattern: recurrence.PatternWeekly}, "Every week"},
		{recurrence.Config{Pattern: recurrence.PatternBiweekly, Time: "15:00"}, "Every 2 weeks at 3:00 PM"},
		{recurrence.Config{Pattern: recurrence.PatternMonthly, DayOfMonth: 15}, "Every month on day 15"},
		{recurrence.Config{Pattern: recurrence.PatternMonthly}, "Every month on day 1"},
		{recurrence.Config{Pattern: recurrence.PatternCustom, Interval: 3}, "Every 3 days"},
		{recurrence.Config{Pattern: recurrence.PatternCustom, Interval: 1, DaysOfWeek: []int{1, 3}}, "On Mon, Wed"},
		{recurrence.Config{Pattern: recurrence.PatternCustom, Time: "00:30"}, "Custom schedule at 12:30 AM"},
		{recurrence.Config{Pattern: "yearly", Time: "10:00"}, "Unknown"},
	}
	for _, tt := range tests {
		if got := recurrence.Describe(tt.cfg); got != tt.want {
			t.Errorf("Describe(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := map[string]string{
		"15:00": "3:00 PM",
		"00:05": "12:05 AM",
		"12:00": "12:00 PM",
		"9:30":  "9:30 AM",
		"bad":   "bad",
	}
	for in, want := range tests {
		if got := recurrence.FormatTime(in); got != want {
			t.Errorf("FormatTime(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPreset(t *testing.T) {
	today := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		pattern  recurrence.Pattern
		interval int
		days     []int
		dom      int
	}{
		{pattern: recurrence.PatternNone},
		{pattern: recurrence.PatternDaily, interval: 1},
		{pattern: recurrence.PatternWeekdays, days: []int{1, 2, 3, 4, 5}},
		{pattern: recurrence.PatternWeekly, interval: 1, days: []int{3}},
		{pattern: recurrence.PatternBiweekly, interval: 2, days: []int{3}},
		{pattern: recurrence.PatternMonthly, interval: 1, dom: 1},
		{pattern: recurrence.PatternCustom, interval: 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			got := recurrence.Preset(tt.pattern, today)
			if got.Pattern != tt.pattern || got.Interval != tt.interval || got.DayOfMonth != tt.dom {
				t.Errorf("Preset() = %+v", got)
			}
			if len(got.DaysOfWeek) != len(tt.days) {
				t.Fatalf("Preset().DaysOfWeek = %v, want %v", got.DaysOfWeek, tt.days)
			}
			for i := range tt.days {
				if got.DaysOfWeek[i] != tt.days[i] {
					t.Errorf("Preset().DaysOfWeek = %v, want %v", got.DaysOfWeek, tt.days)
				}
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Preset() produced invalid config: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  recurrence.Config
		want error
	}{
		{name: "Empty", cfg: recurrence.Config{}},
		{name: "Valid", cfg: recurrence.Config{Pattern: recurrence.PatternCustom, Interval: 2, DaysOfWeek: []int{0, 6}, Time: "07:45"}},
		{name: "Unknown pattern", cfg: recurrence.Config{Pattern: "hourly"}, want: recurrence.ErrUnknownPattern},
		{name: "Negative interval", cfg: recurrence.Config{Pattern: recurrence.PatternDaily, Interval: -1}, want: recurrence.ErrInvalidInterval},
		{name: "Day of week", cfg: recurrence.Config{Pattern: recurrence.PatternCustom, DaysOfWeek: []int{7}}, want: recurrence.ErrInvalidDayOfWeek},
		{name: "Day of month", cfg: recurrence.Config{Pattern: recurrence.PatternMonthly, DayOfMonth: 32}, want: recurrence.ErrInvalidDayOfMonth},
		{name: "Occurrences", cfg: recurrence.Config{Pattern: recurrence.PatternDaily, Occurrences: -3}, want: recurrence.ErrInvalidOccurrences},
		{name: "Time", cfg: recurrence.Config{Pattern: recurrence.PatternDaily, Time: "7pm"}, want: recurrence.ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRRule(t *testing.T) {
	end := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name   string
		cfg    recurrence.Config
		want   string
		wantOK bool
	}{
		{name: "None", cfg: recurrence.Config{Pattern: recurrence.PatternNone}},
		{name: "Daily", cfg: recurrence.Config{Pattern: recurrence.PatternDaily}, want: "RRULE:FREQ=DAILY;INTERVAL=1", wantOK: true},
		{name: "Weekdays", cfg: recurrence.Config{Pattern: recurrence.PatternWeekdays}, want: "RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR", wantOK: true},
		{name: "Biweekly", cfg: recurrence.Config{Pattern: recurrence.PatternBiweekly}, want: "RRULE:FREQ=WEEKLY;INTERVAL=2", wantOK: true},
		{name: "Weekly until", cfg: recurrence.Config{Pattern: recurrence.PatternWeekly, EndDate: &end}, want: "RRULE:FREQ=WEEKLY;INTERVAL=1;UNTIL=20240630T235959Z", wantOK: true},
		{name: "Monthly count", cfg: recurrence.Config{Pattern: recurrence.PatternMonthly, DayOfMonth: 10, Occurrences: 6}, want: "RRULE:FREQ=MONTHLY;BYMONTHDAY=10;COUNT=6", wantOK: true},
		{name: "Custom interval", cfg: recurrence.Config{Pattern: recurrence.PatternCustom, Interval: 3}, want: "RRULE:FREQ=DAILY;INTERVAL=3", wantOK: true},
		{name: "Custom degenerate", cfg: recurrence.Config{Pattern: recurrence.PatternCustom}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := recurrence.RRule(tt.cfg)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("RRule() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
