package chronofmt

import (
	"fmt"
	"time"
)

// TimestampUnit disambiguates numeric epoch input.
type TimestampUnit string

const (
	// UnitSeconds interprets numeric input as seconds since the Unix epoch.
	UnitSeconds TimestampUnit = "seconds"
	// UnitMilliseconds interprets numeric input as milliseconds since the
	// Unix epoch.
	UnitMilliseconds TimestampUnit = "milliseconds"
)

// Validate checks the unit against the supported set. The empty unit is
// valid and stands for UnitSeconds.
func (u TimestampUnit) Validate() error {
	switch u {
	case "", UnitSeconds, UnitMilliseconds:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTimestampUnit, u)
	}
}

// Options carries the optional per-call configuration. The zero value is
// a valid default: seconds-based timestamps, en_US locale, no custom pattern.
type Options struct {
	// Locale is a BCP 47 locale ("fr", "pt-BR") affecting only custom-pattern
	// rendering. Unrecognized locales fall back to en_US.
	Locale string
	// TimestampUnit disambiguates numeric input whose magnitude is ambiguous.
	// Defaults to seconds.
	TimestampUnit TimestampUnit
	// CustomFormat is the pattern rendered by FormatCustom. Required for
	// that format, ignored by every other.
	CustomFormat string
}

// Validate checks the option bag for values the pipeline cannot honor.
func (o Options) Validate() error {
	return o.TimestampUnit.Validate()
}

// Result is the successful outcome of a format operation: the rendered value
// (string, or int64 for the timestamp formats) together with the normalized
// instant it was rendered from.
type Result struct {
	Value any
	Date  time.Time
}
