package chronofmt

import (
	"context"
	"sync"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	AttrFormat = "format"
	AttrStatus = "status"

	ErrDomainMetrics = "metrics"

	statusOK    = "ok"
	statusError = "error"
)

// Meters collects counters for the formatting pipeline. A nil *Meters is
// valid and records nothing.
type Meters struct {
	renders      metric.Int64Counter
	smartRenders metric.Int64Counter
}

// InitMeters creates the pipeline counters on the given meter.
func InitMeters(ctx context.Context, meter metric.Meter) (*Meters, error) {
	renders, err := meter.Int64Counter(
		"chronofmt.renders",
		metric.WithDescription("Counter of format operations, partitioned by format and status."),
	)
	if err != nil {
		return nil, oops.In(ErrDomainMetrics).
			WithContext(ctx).
			Wrapf(err, "creating chronofmt.renders meter")
	}

	smartRenders, err := meter.Int64Counter(
		"chronofmt.smart_renders",
		metric.WithDescription("Counter of smart renders, partitioned by the chosen format."),
	)
	if err != nil {
		return nil, oops.In(ErrDomainMetrics).
			WithContext(ctx).
			Wrapf(err, "creating chronofmt.smart_renders meter")
	}

	return &Meters{
		renders:      renders,
		smartRenders: smartRenders,
	}, nil
}

func (m *Meters) handleRender(ctx context.Context, format FormatName, status string) {
	if m == nil {
		return
	}

	m.renders.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrFormat, format.String()),
		attribute.String(AttrStatus, status),
	))
}

func (m *Meters) handleSmartRender(ctx context.Context, format FormatName) {
	if m == nil {
		return
	}

	m.smartRenders.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrFormat, format.String()),
	))
}

var (
	defaultMeters     *Meters
	defaultMetersOnce sync.Once
)

// meters returns the package-wide Meters backed by the global otel meter
// provider. Counter creation failures leave metrics disabled rather than
// failing the pipeline.
func meters() *Meters {
	defaultMetersOnce.Do(func() {
		m, err := InitMeters(context.Background(), otel.Meter("chronofmt"))
		if err != nil {
			return
		}

		defaultMeters = m
	})

	return defaultMeters
}
