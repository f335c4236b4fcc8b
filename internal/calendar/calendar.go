// Package calendar binds the external date libraries behind the small set of
// operations the formatting pipeline needs: freeform parsing, a validity
// predicate, human-readable distances and locale-aware pattern rendering.
package calendar

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
	"github.com/goodsign/monday"
)

// ParseFreeform parses a date-like string in any of the commonly seen
// formats. Strings without an explicit zone are interpreted in the host's
// local zone.
func ParseFreeform(text string) (time.Time, error) {
	return dateparse.ParseIn(text, time.Local)
}

// IsValid reports whether t is a usable calendar instant. The zero time.Time
// marks an instant that was never properly constructed.
func IsValid(t time.Time) bool {
	if t.IsZero() {
		return false
	}

	year := t.Year()

	return year >= 1 && year <= 9999
}

// HumanDistance renders the distance between t and ref in words, with a
// directional suffix: "3 hours ago", "2 days from now".
func HumanDistance(t, ref time.Time) string {
	return humanize.RelTime(t, ref, "ago", "from now")
}

// FormatPattern renders t using a caller-supplied pattern and an optional
// BCP 47 locale. The pattern uses the token set described in Layout.
func FormatPattern(t time.Time, pattern, locale string) (string, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}

	return monday.Format(t, layout, ResolveLocale(locale)), nil
}
