package observe

import (
	"context"
	"time"
)

// EncodeFunc is the signature of an instrumentable encode call.
type EncodeFunc func(ctx context.Context, meta OpMeta, input string) (Outcome, error)

// Middleware wraps encode calls with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe EncodeFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from the wrapped function are recorded and propagated unchanged.
//   - Ownership: the Outcome is returned without modification.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware. Nil components are replaced with
// no-op implementations.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = &noopMetrics{}
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Logger returns the logger used by the middleware.
func (m *Middleware) Logger() Logger {
	return m.logger
}

// Wrap wraps an EncodeFunc with tracing, metrics, and logging.
// Input and output are never logged; only their sizes are.
func (m *Middleware) Wrap(fn EncodeFunc) EncodeFunc {
	return func(ctx context.Context, meta OpMeta, input string) (Outcome, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)

		start := time.Now()
		out, err := fn(ctx, meta, input)
		duration := time.Since(start)

		m.tracer.EndSpan(span, out, err)
		m.metrics.RecordEncode(ctx, meta, out, duration, err)

		opLogger := m.logger.WithOp(meta)
		fields := []Field{
			{Key: "duration_us", Value: float64(duration.Nanoseconds()) / 1e3},
			{Key: "input_size", Value: out.InputLen},
			{Key: "path", Value: out.Path},
		}

		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			opLogger.Error(ctx, "encode failed", fields...)
		} else {
			fields = append(fields, Field{Key: "escaped", Value: out.Escaped})
			opLogger.Debug(ctx, "encode completed", fields...)
		}

		return out, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
