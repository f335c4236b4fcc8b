package chronofmt

import (
	"fmt"
	"time"

	"github.com/chronofmt/chronofmt/internal/calendar"
)

// Go reference layouts backing the named formats.
const (
	layoutISO          = "2006-01-02T15:04:05.000Z"
	layoutDate         = "2006-01-02"
	layoutDateTime     = "2006-01-02 15:04"
	layoutMonthDayYear = "Jan 2, 2006"
	layoutFullMonth    = "January 2, 2006"
	layoutMonthDayTime = "Jan 2, 15:04"
	layoutFull         = "Jan 2, 2006, 15:04"
	layoutMonthDay     = "Jan 2"
)

// render dispatches a normalized instant to the rendering rule for the
// requested format. The "current instant" used by FormatRelative is read
// here, at render time, so repeated calls reflect elapsed time.
func render(instant time.Time, format FormatName, opts Options) (any, error) {
	switch format {
	case FormatISO:
		return instant.UTC().Format(layoutISO), nil
	case FormatDateOnly:
		return instant.Format(layoutDate), nil
	case FormatDateTime:
		return instant.Format(layoutDateTime), nil
	case FormatMonthDayYear:
		return instant.Format(layoutMonthDayYear), nil
	case FormatFullMonthDayYear:
		return instant.Format(layoutFullMonth), nil
	case FormatMonthDayTime:
		return instant.Format(layoutMonthDayTime), nil
	case FormatFull:
		return instant.Format(layoutFull), nil
	case FormatTimestamp:
		return instant.Unix(), nil
	case FormatTimestampMilli:
		return instant.UnixMilli(), nil
	case FormatRelative:
		return calendar.HumanDistance(instant, time.Now()), nil
	case FormatMonthDay:
		return instant.Format(layoutMonthDay), nil
	case FormatCustom:
		if opts.CustomFormat == "" {
			return nil, ErrMissingCustomFormat
		}

		return calendar.FormatPattern(instant, opts.CustomFormat, opts.Locale)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
