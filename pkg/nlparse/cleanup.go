package nlparse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	spaceRe          = regexp.MustCompile(`\s+`)
	leadingFillerRe  = regexp.MustCompile(`(?i)^(?:to|and|the|a)\s+`)
	trailingFillerRe = regexp.MustCompile(`(?i)\s+(?:to|and|the|a)$`)
)

// CleanTitle collapses whitespace, drops one leading and one trailing filler
// word (to, and, the, a) and capitalises the first letter.
func CleanTitle(title string) string {
	title = strings.TrimSpace(spaceRe.ReplaceAllString(title, " "))
	title = leadingFillerRe.ReplaceAllString(title, "")
	title = trailingFillerRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(title)
	return string(unicode.ToUpper(r)) + title[size:]
}
