package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Slugify lower-cases name and joins its alphanumeric runs with hyphens.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// NthSlug returns the n-th candidate for base: base itself, then base-2, base-3...
func NthSlug(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}

// Weekday maps t to the Monday=0 numbering used by operating hours.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
