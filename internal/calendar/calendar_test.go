package calendar_test

import (
	"testing"
	"time"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronofmt/chronofmt/internal/calendar"
)

func TestParseFreeform(t *testing.T) {
	tests := map[string]struct {
		text      string
		expected  time.Time
		expectErr bool
	}{
		"RFC3339 with zone": {
			text:     "2023-05-15T12:10:00Z",
			expected: time.Date(2023, time.May, 15, 12, 10, 0, 0, time.UTC),
		},
		"ISO with milliseconds": {
			text:     "2023-05-15T12:10:00.500Z",
			expected: time.Date(2023, time.May, 15, 12, 10, 0, 500000000, time.UTC),
		},
		"US slash date": {
			text:     "05/15/2023",
			expected: time.Date(2023, time.May, 15, 0, 0, 0, 0, time.Local),
		},
		"Garbage": {
			text:      "invalid-date",
			expectErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			parsed, err := calendar.ParseFreeform(test.text)
			if test.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, test.expected.Equal(parsed), "expected %v, got %v", test.expected, parsed)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.False(t, calendar.IsValid(time.Time{}))
	assert.True(t, calendar.IsValid(time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, calendar.IsValid(time.Unix(0, 0)))
	assert.False(t, calendar.IsValid(time.Date(12000, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestHumanDistance(t *testing.T) {
	ref := time.Date(2023, time.May, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "1 hour ago", calendar.HumanDistance(ref.Add(-time.Hour), ref))
	assert.Equal(t, "2 days from now", calendar.HumanDistance(ref.Add(48*time.Hour), ref))
}

func TestResolveLocale(t *testing.T) {
	tests := map[string]struct {
		locale   string
		expected monday.Locale
	}{
		"Empty defaults to US English": {locale: "", expected: monday.LocaleEnUS},
		"Bare language":                {locale: "fr", expected: monday.LocaleFrFR},
		"Language with region":         {locale: "pt-BR", expected: monday.LocalePtBR},
		"Close regional variant":       {locale: "de-AT", expected: monday.LocaleDeDE},
		"Unparseable":                  {locale: "not a locale!", expected: monday.LocaleEnUS},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, calendar.ResolveLocale(test.locale))
		})
	}
}
