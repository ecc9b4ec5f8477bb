package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records encode metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordEncode records one encode call with its outcome and duration.
	RecordEncode(ctx context.Context, meta OpMeta, out Outcome, duration time.Duration, err error)
}

type metricsImpl struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	escapedBytes metric.Int64Counter
	inputBytes   metric.Int64Histogram
	durationHist metric.Float64Histogram
}

// NewMetrics creates a Metrics instance backed by meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	return newMetrics(meter)
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"urlsafe.encode.total",
		metric.WithDescription("Total number of encode calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"urlsafe.encode.errors",
		metric.WithDescription("Total number of failed encode calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	escapedBytes, err := meter.Int64Counter(
		"urlsafe.encode.escaped_bytes",
		metric.WithDescription("Input bytes written as percent escapes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	inputBytes, err := meter.Int64Histogram(
		"urlsafe.encode.input_size",
		metric.WithDescription("Size of encode inputs"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"urlsafe.encode.duration_us",
		metric.WithDescription("Encode duration in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		errorCount:   errorCount,
		escapedBytes: escapedBytes,
		inputBytes:   inputBytes,
		durationHist: durationHist,
	}, nil
}

// RecordEncode records metrics for an encode call.
func (m *metricsImpl) RecordEncode(ctx context.Context, meta OpMeta, out Outcome, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("op.id", meta.ID()),
	}
	if out.Path != "" {
		attrs = append(attrs, attribute.String("encode.path", out.Path))
	}
	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)

	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}

	if out.Escaped > 0 {
		m.escapedBytes.Add(ctx, int64(out.Escaped), opt)
	}

	m.inputBytes.Record(ctx, int64(out.InputLen), opt)
	m.durationHist.Record(ctx, float64(duration.Nanoseconds())/1e3, opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordEncode(ctx context.Context, meta OpMeta, out Outcome, duration time.Duration, err error) {
}
