package chronofmt

import (
	"errors"

	"github.com/chronofmt/chronofmt/internal/calendar"
)

// Error domains used when wrapping with oops.
const (
	errDomainRender = "render"
	errDomainSmart  = "smart"

	// codeParseFault tags faults recovered at the public API boundary.
	codeParseFault = "parse_fault"
)

var (
	// ErrUnsupportedInput is returned when the input is none of the accepted
	// shapes: time.Time, numeric epoch value, or string.
	ErrUnsupportedInput = errors.New("unsupported input format")
	// ErrInvalidDate is returned when the input cannot be normalized into a
	// valid calendar instant.
	ErrInvalidDate = errors.New("invalid date")
	// ErrMissingCustomFormat is returned when FormatCustom is requested
	// without Options.CustomFormat.
	ErrMissingCustomFormat = errors.New("custom format requires the CustomFormat option")
	// ErrUnsupportedFormat is returned for a format name outside the closed set.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrInvalidTimestampUnit is returned for a timestamp unit other than
	// seconds or milliseconds.
	ErrInvalidTimestampUnit = errors.New("invalid timestamp unit")

	// ErrInvalidCustomFormat is returned when the custom pattern contains a
	// token the renderer does not understand. The error message carries the
	// offending pattern.
	ErrInvalidCustomFormat = calendar.ErrInvalidPattern
)
