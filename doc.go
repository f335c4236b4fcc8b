// Package chronofmt normalizes heterogeneous date-like inputs — time.Time
// values, numeric epoch timestamps in seconds or milliseconds, and assorted
// string representations — into a single calendar instant, then renders that
// instant in one of a closed set of named output formats.
//
// The pipeline is parse → validate → format: Normalize produces a
// guaranteed-valid instant or an error, FormatDate dispatches it to a
// rendering rule, and SmartDate sits above both, choosing the format from
// the distance between the instant and the current time.
//
// All operations are synchronous, allocate per call, and share no state;
// concurrent use needs no coordination.
package chronofmt
