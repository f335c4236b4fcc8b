package calendar

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPattern = errors.New("invalid custom format")

// patternTokens maps caller-facing pattern tokens to Go reference layout
// fragments. Order matters: longer tokens are matched before their prefixes.
var patternTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"HH", "15"},
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSS", "000"},
	{"A", "PM"},
	{"a", "pm"},
	{"ZZ", "-0700"},
	{"Z", "-07:00"},
}

// Layout translates a pattern string into a Go reference layout.
// Alphabetic runs must form known tokens; anything else passes through
// verbatim. Text wrapped in square brackets is emitted literally:
// "[at] HH:mm" renders as "at 14:30". A pattern containing an unknown
// token is rejected as a whole.
func Layout(pattern string) (string, error) {
	var sb strings.Builder

	rest := pattern
	for len(rest) > 0 {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: %s", ErrInvalidPattern, pattern)
			}

			sb.WriteString(rest[1:end])
			rest = rest[end+1:]

			continue
		}

		if !isPatternLetter(rest[0]) {
			sb.WriteByte(rest[0])
			rest = rest[1:]

			continue
		}

		matched := false

		for _, tok := range patternTokens {
			if strings.HasPrefix(rest, tok.token) {
				sb.WriteString(tok.layout)
				rest = rest[len(tok.token):]
				matched = true

				break
			}
		}

		if !matched {
			return "", fmt.Errorf("%w: %s", ErrInvalidPattern, pattern)
		}
	}

	return sb.String(), nil
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
