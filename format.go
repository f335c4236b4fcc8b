package chronofmt

import "fmt"

// FormatName identifies one of the named output formats. The set is closed:
// anything outside it is rejected, not silently defaulted.
type FormatName string

const (
	// FormatISO renders a full ISO-8601 instant with millisecond precision
	// and the UTC designator, e.g. "2023-05-15T12:10:00.000Z".
	FormatISO FormatName = "ISO"
	// FormatDateOnly renders a zero-padded calendar date, e.g. "2023-05-15".
	FormatDateOnly FormatName = "YYYY-MM-DD"
	// FormatDateTime renders a calendar date with a 24-hour clock,
	// e.g. "2023-05-15 12:10".
	FormatDateTime FormatName = "YYYY-MM-DD HH:mm"
	// FormatMonthDayYear renders an abbreviated month with day and year,
	// e.g. "May 15, 2023".
	FormatMonthDayYear FormatName = "MMM D, YYYY"
	// FormatFullMonthDayYear renders the full month name with day and year,
	// e.g. "January 15, 2023".
	FormatFullMonthDayYear FormatName = "MMMM D, YYYY"
	// FormatMonthDayTime renders an abbreviated month with day and clock,
	// e.g. "May 15, 12:10".
	FormatMonthDayTime FormatName = "MMM D, HH:mm"
	// FormatFull renders month, day, year and clock, e.g. "May 15, 2023, 12:10".
	FormatFull FormatName = "MMM D, YYYY, HH:mm"
	// FormatTimestamp renders whole seconds since the Unix epoch as an int64.
	FormatTimestamp FormatName = "timestamp"
	// FormatTimestampMilli renders milliseconds since the Unix epoch as an int64.
	FormatTimestampMilli FormatName = "timestamp-ms"
	// FormatRelative renders the distance to the current instant in words,
	// e.g. "3 hours ago" or "2 days from now".
	FormatRelative FormatName = "relative"
	// FormatMonthDay renders an abbreviated month with day, e.g. "May 15".
	FormatMonthDay FormatName = "MMM D"
	// FormatCustom renders with the caller-supplied Options.CustomFormat
	// pattern and optional Options.Locale.
	FormatCustom FormatName = "custom"
)

var validFormats = map[FormatName]struct{}{
	FormatISO:              {},
	FormatDateOnly:         {},
	FormatDateTime:         {},
	FormatMonthDayYear:     {},
	FormatFullMonthDayYear: {},
	FormatMonthDayTime:     {},
	FormatFull:             {},
	FormatTimestamp:        {},
	FormatTimestampMilli:   {},
	FormatRelative:         {},
	FormatMonthDay:         {},
	FormatCustom:           {},
}

// Validate reports whether the format name belongs to the closed set.
// The empty name is valid and stands for FormatISO.
func (f FormatName) Validate() error {
	if f == "" {
		return nil
	}

	if _, ok := validFormats[f]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	return nil
}

func (f FormatName) String() string {
	return string(f)
}

// Formats returns the closed set of named output formats.
func Formats() []FormatName {
	names := make([]FormatName, 0, len(validFormats))
	for name := range validFormats {
		names = append(names, name)
	}

	return names
}
