package nlparse

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

type keyword[T any] struct {
	value T
	re    *regexp.Regexp
}

// phraseRe matches phrase as a case-insensitive substring, any run of
// whitespace standing in for each space. There are no word boundaries, so
// "next weekend" holds "next week" and "asapnow" holds "asap".
func phraseRe(phrase string) *regexp.Regexp {
	parts := strings.Fields(phrase)
	for i, w := range parts {
		parts[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(parts, `\s+`))
}

func words[T any](value T, phrases ...string) []keyword[T] {
	out := make([]keyword[T], 0, len(phrases))
	for _, p := range phrases {
		out = append(out, keyword[T]{value: value, re: phraseRe(p)})
	}
	return out
}

// Tables are scanned in order; the first entry that matches wins.
var (
	recurrenceWords = slices.Concat(
		words(RecurrenceDaily, "every day", "daily", "everyday", "each day"),
		words(RecurrenceWeekly, "every week", "weekly", "each week",
			"every sunday", "every monday", "every tuesday", "every wednesday",
			"every thursday", "every friday", "every saturday"),
		words(RecurrenceMonthly, "every month", "monthly", "each month"),
	)

	priorityWords = slices.Concat(
		words(PriorityHigh, "urgent", "important", "critical", "high priority", "asap"),
		words(PriorityLow, "low priority", "whenever", "eventually", "someday"),
	)

	relativeWords = func() []keyword[string] {
		var out []keyword[string]
		for _, p := range []string{"today", "tomorrow", "yesterday", "next week", "next month"} {
			out = append(out, words(p, p)...)
		}
		return out
	}()
)

type weekdayPhrase struct {
	day      time.Weekday
	skipWeek bool
	re       *regexp.Regexp
}

// weekdayPhrases lists Sunday..Saturday, each with its next/this/on/bare forms.
var weekdayPhrases = func() []weekdayPhrase {
	var out []weekdayPhrase
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		out = append(out,
			weekdayPhrase{day: d, skipWeek: true, re: phraseRe("next " + name)},
			weekdayPhrase{day: d, re: phraseRe("this " + name)},
			weekdayPhrase{day: d, re: phraseRe("on " + name)},
			weekdayPhrase{day: d, re: phraseRe(name)},
		)
	}
	return out
}()

var (
	projectRe  = regexp.MustCompile(`#(\w+)`)
	durationRe = regexp.MustCompile(`(?i)\b(?:for\s+)?(\d+)\s*(minutes|minute|mins|min|hours|hour|hrs|hr|h|m)\b`)

	// Tried in order: "at 3pm", "3pm", "by 3pm".
	timeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bat\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`),
		regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`),
		regexp.MustCompile(`(?i)\bby\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`),
	}

	monthDateRe   = regexp.MustCompile(`(?i)\b(?:on\s+)?(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
)
