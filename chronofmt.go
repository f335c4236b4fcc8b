package chronofmt

import (
	"context"
	"time"

	"github.com/samber/oops"
	slogctx "github.com/veqryn/slog-context"
)

// FormatDate normalizes the input and renders it in the requested format.
// An empty format renders as FormatISO. On success the Result carries the
// rendered value and the normalized instant it came from. Panics below the
// API surface are recovered and returned as errors.
func FormatDate(ctx context.Context, input any, format FormatName, opts *Options) (Result, error) {
	var (
		res Result
		err error
	)

	fault := oops.Code(codeParseFault).In(errDomainRender).WithContext(ctx).Recover(func() {
		res, err = formatDate(ctx, input, format, opts)
	})
	if fault != nil {
		meters().handleRender(ctx, format, statusError)

		return Result{}, fault
	}

	return res, err
}

func formatDate(ctx context.Context, input any, format FormatName, opts *Options) (Result, error) {
	if format == "" {
		format = FormatISO
	}

	var o Options
	if opts != nil {
		o = *opts
	}

	if err := o.Validate(); err != nil {
		meters().handleRender(ctx, format, statusError)

		return Result{}, err
	}

	instant, err := Normalize(input, o.TimestampUnit)
	if err != nil {
		meters().handleRender(ctx, format, statusError)

		return Result{}, err
	}

	value, err := render(instant, format, o)
	if err != nil {
		meters().handleRender(ctx, format, statusError)

		return Result{}, err
	}

	meters().handleRender(ctx, format, statusOK)

	return Result{Value: value, Date: instant}, nil
}

// ConvertDate is FormatDate without the diagnostics: it returns the rendered
// value directly, or nil on any failure. Callers needing to know why a
// conversion failed should use FormatDate.
func ConvertDate(ctx context.Context, input any, format FormatName, opts *Options) any {
	res, err := FormatDate(ctx, input, format, opts)
	if err != nil {
		return nil
	}

	return res.Value
}

// SmartDate normalizes the input and picks the output format from the gap
// between the instant and now: recent and future instants render relatively,
// older instants from the current year omit the year, the rest spell it out.
// Every failure collapses to nil; the detail is logged, not returned.
func SmartDate(ctx context.Context, input any, opts *Options) any {
	var out any

	fault := oops.Code(codeParseFault).In(errDomainSmart).WithContext(ctx).Recover(func() {
		out = smartDate(ctx, input, opts)
	})
	if fault != nil {
		slogctx.Error(ctx, "smart date rendering failed", "error", fault)

		return nil
	}

	return out
}

func smartDate(ctx context.Context, input any, opts *Options) any {
	var o Options
	if opts != nil {
		o = *opts
	}

	instant, err := Normalize(input, o.TimestampUnit)
	if err != nil {
		slogctx.Debug(ctx, "smart date input did not normalize", "error", err)

		return nil
	}

	format := selectFormat(time.Now(), instant)

	value, err := render(instant, format, o)
	if err != nil {
		slogctx.Error(ctx, "smart date rendering failed", "format", format.String(), "error", err)

		return nil
	}

	meters().handleSmartRender(ctx, format)

	return value
}
