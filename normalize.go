package chronofmt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/chronofmt/chronofmt/internal/calendar"
)

// msThreshold is the magnitude above which a numeric epoch value cannot be a
// plausible seconds-based timestamp and is read as milliseconds, regardless
// of the caller's TimestampUnit. The override is intentional; see Normalize.
const msThreshold = 10_000_000_000

// plainDate matches a bare year-month-day string.
var plainDate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Normalize converts any accepted input shape into a calendar instant.
//
// time.Time values pass through unchanged. Numeric values are epoch
// timestamps: read as milliseconds when the value exceeds 10,000,000,000 or
// unit is UnitMilliseconds, as seconds otherwise. Note the surprising
// precedence: a huge value forces the milliseconds reading even when the
// caller explicitly asked for seconds. Strings go through freeform parsing,
// with a bare "YYYY-MM-DD" fallback that constructs local midnight directly
// so the date does not shift across the UTC boundary.
//
// Every path ends with a validity check; the instant returned is guaranteed
// calendar-valid.
func Normalize(input any, unit TimestampUnit) (time.Time, error) {
	var (
		instant time.Time
		err     error
	)

	switch v := input.(type) {
	case time.Time:
		instant = v
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil *time.Time", ErrUnsupportedInput)
		}

		instant = *v
	case int:
		instant = fromEpoch(int64(v), unit)
	case int32:
		instant = fromEpoch(int64(v), unit)
	case int64:
		instant = fromEpoch(v, unit)
	case uint:
		instant = fromEpoch(int64(v), unit)
	case uint32:
		instant = fromEpoch(int64(v), unit)
	case uint64:
		instant = fromEpoch(int64(v), unit)
	case float32:
		instant = fromEpoch(int64(v), unit)
	case float64:
		instant = fromEpoch(int64(v), unit)
	case string:
		instant, err = parseText(v)
		if err != nil {
			return time.Time{}, err
		}
	default:
		return time.Time{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
	}

	if !calendar.IsValid(instant) {
		return time.Time{}, ErrInvalidDate
	}

	return instant, nil
}

func fromEpoch(value int64, unit TimestampUnit) time.Time {
	if value > msThreshold || unit == UnitMilliseconds {
		return time.UnixMilli(value)
	}

	return time.Unix(value, 0)
}

// parseText parses a date-like string. Freeform parsing runs first; when it
// cannot produce an instant and the text is a bare year-month-day, the date
// is constructed explicitly at local midnight instead.
func parseText(text string) (time.Time, error) {
	instant, err := calendar.ParseFreeform(text)
	if err == nil && calendar.IsValid(instant) {
		return instant, nil
	}

	if m := plainDate.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])

		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
	}

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return time.Time{}, ErrInvalidDate
}
