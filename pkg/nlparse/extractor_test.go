package nlparse_test

import (
	"testing"
	"time"

	"dothis/pkg/datemath"
	"dothis/pkg/nlparse"
)

// Wednesday, May 1 2024.
var baseNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newExtractor() *nlparse.Extractor {
	return nlparse.New(nlparse.WithClock(datemath.FixedClock(baseNow)), nlparse.WithLocation(time.UTC))
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int { return &v }

func TestParse(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		name       string
		input      string
		want       nlparse.ParsedTask
		success    bool
		confidence float64
	}{
		{
			name:  "Full sentence",
			input: "Call mom tomorrow at 3pm #family urgent",
			want: nlparse.ParsedTask{
				Title: "Call mom", Date: day(2024, 5, 2), Time: "15:00",
				Priority: nlparse.PriorityHigh, Project: "family", Tags: []string{"family"},
			},
			success:    true,
			confidence: 0.5,
		},
		{
			name:       "Duration with daily recurrence",
			input:      "Workout for 30 minutes daily",
			want:       nlparse.ParsedTask{Title: "Workout", Duration: intPtr(30), Recurrence: nlparse.RecurrenceDaily},
			success:    true,
			confidence: 0.2,
		},
		{
			name:       "Only a tag",
			input:      "#shopping",
			want:       nlparse.ParsedTask{Project: "shopping", Tags: []string{"shopping"}},
			success:    false,
			confidence: 0.1,
		},
		{
			name:       "Every weekday name degrades to weekly",
			input:      "Team meeting every monday at 10am",
			want:       nlparse.ParsedTask{Title: "Team meeting", Time: "10:00", Recurrence: nlparse.RecurrenceWeekly},
			success:    true,
			confidence: 0.25,
		},
		{
			name:       "Next week with priority",
			input:      "Submit proposal next week urgent",
			want:       nlparse.ParsedTask{Title: "Submit proposal", Date: day(2024, 5, 8), Priority: nlparse.PriorityHigh},
			success:    true,
			confidence: 0.25,
		},
		{
			name:       "Bare hour is read on a 24-hour clock",
			input:      "Call at 3",
			want:       nlparse.ParsedTask{Title: "Call", Time: "03:00"},
			success:    true,
			confidence: 0.15,
		},
		{
			name:       "Out of range hour is ignored",
			input:      "Ship release at 25",
			want:       nlparse.ParsedTask{Title: "Ship release at 25"},
			success:    true,
			confidence: 0,
		},
		{
			name:       "Midnight and noon",
			input:      "Lunch at 12pm",
			want:       nlparse.ParsedTask{Title: "Lunch", Time: "12:00"},
			success:    true,
			confidence: 0.15,
		},
		{
			name:       "12am",
			input:      "Backup 12am",
			want:       nlparse.ParsedTask{Title: "Backup", Time: "00:00"},
			success:    true,
			confidence: 0.15,
		},
		{
			name:       "Time with minutes via by",
			input:      "Send invoice by 5:30",
			want:       nlparse.ParsedTask{Title: "Send invoice", Time: "05:30"},
			success:    true,
			confidence: 0.15,
		},
		{
			name:       "Hours become minutes",
			input:      "Review code 2 hours",
			want:       nlparse.ParsedTask{Title: "Review code", Duration: intPtr(120)},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Low priority",
			input:      "Read book someday",
			want:       nlparse.ParsedTask{Title: "Read book", Priority: nlparse.PriorityLow},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Next weekday skips a week",
			input:      "Plan trip next friday",
			want:       nlparse.ParsedTask{Title: "Plan trip", Date: day(2024, 5, 10)},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "On weekday",
			input:      "Dinner on Friday",
			want:       nlparse.ParsedTask{Title: "Dinner", Date: day(2024, 5, 3)},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Same weekday goes to next week",
			input:      "Standup wednesday",
			want:       nlparse.ParsedTask{Title: "Standup", Date: day(2024, 5, 8)},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Month day",
			input:      "Dentist on Dec 5th",
			want:       nlparse.ParsedTask{Title: "Dentist", Date: day(2024, 12, 5)},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Past month day rolls to next year",
			input:      "Book flight january 3",
			want:       nlparse.ParsedTask{Title: "Book flight", Date: day(2025, 1, 3)},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Numeric date without year",
			input:      "Pay rent 1/15",
			want:       nlparse.ParsedTask{Title: "Pay rent", Date: day(2024, 1, 15)},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Numeric date with short year",
			input:      "Renew passport 3/4/26",
			want:       nlparse.ParsedTask{Title: "Renew passport", Date: day(2026, 3, 4)},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Three digit year is taken as written",
			input:      "Pay rent 12/25/202",
			want:       nlparse.ParsedTask{Title: "Pay rent", Date: day(202, 12, 25)},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Relative keyword inside a longer word",
			input:      "Do taxes next weekend",
			want:       nlparse.ParsedTask{Title: "Do taxes end", Date: day(2024, 5, 8)},
			success:    true,
			confidence: 0.15,
		},
		{
			name:       "Recurrence phrase inside a longer word",
			input:      "Plan every weekday standup",
			want:       nlparse.ParsedTask{Title: "Plan day standup", Recurrence: nlparse.RecurrenceWeekly},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Priority keyword inside a longer word",
			input:      "Call asapnow",
			want:       nlparse.ParsedTask{Title: "Call now", Priority: nlparse.PriorityHigh},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Relative date wins over weekday",
			input:      "Email Sam tomorrow not monday",
			want:       nlparse.ParsedTask{Title: "Email Sam not monday", Date: day(2024, 5, 2)},
			success:    true,
			confidence: 0.15,
		},
		{
			name:       "Several tags",
			input:      "Fix bug #work #backend",
			want:       nlparse.ParsedTask{Title: "Fix bug", Project: "work", Tags: []string{"work", "backend"}},
			success:    true,
			confidence: 0.1,
		},
		{
			name:       "Filler words",
			input:      "to the store",
			want:       nlparse.ParsedTask{Title: "The store"},
			success:    true,
			confidence: 0,
		},
		{
			name:    "Empty",
			input:   "   ",
			success: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Parse(tt.input)

			if got.Success != tt.success {
				t.Errorf("Success = %v, want %v", got.Success, tt.success)
			}
			if got.Confidence != tt.confidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.confidence)
			}
			assertTask(t, got.Task, tt.want)
		})
	}
}

func assertTask(t *testing.T, got, want nlparse.ParsedTask) {
	t.Helper()

	if got.Title != want.Title {
		t.Errorf("Title = %q, want %q", got.Title, want.Title)
	}
	if got.Time != want.Time {
		t.Errorf("Time = %q, want %q", got.Time, want.Time)
	}
	if got.Priority != want.Priority {
		t.Errorf("Priority = %q, want %q", got.Priority, want.Priority)
	}
	if got.Project != want.Project {
		t.Errorf("Project = %q, want %q", got.Project, want.Project)
	}
	if got.Recurrence != want.Recurrence {
		t.Errorf("Recurrence = %q, want %q", got.Recurrence, want.Recurrence)
	}
	if len(got.Tags) != len(want.Tags) {
		t.Errorf("Tags = %v, want %v", got.Tags, want.Tags)
	} else {
		for i := range want.Tags {
			if got.Tags[i] != want.Tags[i] {
				t.Errorf("Tags[%d] = %q, want %q", i, got.Tags[i], want.Tags[i])
			}
		}
	}

	switch {
	case want.Date == nil && got.Date != nil:
		t.Errorf("Date = %v, want none", got.Date)
	case want.Date != nil && got.Date == nil:
		t.Errorf("Date = none, want %v", want.Date)
	case want.Date != nil && !got.Date.Equal(*want.Date):
		t.Errorf("Date = %v, want %v", got.Date, want.Date)
	}

	switch {
	case want.Duration == nil && got.Duration != nil:
		t.Errorf("Duration = %d, want none", *got.Duration)
	case want.Duration != nil && got.Duration == nil:
		t.Errorf("Duration = none, want %d", *want.Duration)
	case want.Duration != nil && *got.Duration != *want.Duration:
		t.Errorf("Duration = %d, want %d", *got.Duration, *want.Duration)
	}
}

func TestParseSuggestions(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Nothing missing", input: "Call mom tomorrow at 3pm", want: nil},
		{name: "No date", input: "Call mom at 3pm", want: []string{nlparse.SuggestDate}},
		{name: "No time", input: "Call mom tomorrow", want: []string{nlparse.SuggestTime}},
		{name: "Short title", input: "Gym", want: []string{nlparse.SuggestDate, nlparse.SuggestTime, nlparse.SuggestDetail}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Parse(tt.input).Suggestions
			if len(got) != len(tt.want) {
				t.Fatalf("Suggestions = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Suggestions[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	// 20:00 UTC on April 30 is already May 1 in UTC+7.
	now := time.Date(2024, 4, 30, 20, 0, 0, 0, time.UTC)
	e := nlparse.New(nlparse.WithClock(datemath.FixedClock(now)), nlparse.WithLocation(loc))

	got := e.Parse("Pay bills today")
	if got.Task.Date == nil {
		t.Fatal("expected a date")
	}
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	if !got.Task.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", got.Task.Date, want)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  buy   milk  ", "Buy milk"},
		{"and call the bank", "Call the bank"},
		{"call the bank and", "Call the bank"},
		{"to a", "A"},
		{"the the the", "The"},
		{"", ""},
		{"épicerie", "Épicerie"},
	}
	for _, tt := range tests {
		if got := nlparse.CleanTitle(tt.in); got != tt.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
