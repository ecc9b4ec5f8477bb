package observe

import (
	"context"
	"io"
	"testing"
	"time"
)

func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "encode completed", Field{Key: "input_size", Value: 42})
	}
}

func BenchmarkLogger_LevelFiltering(b *testing.B) {
	logger := NewLoggerWithWriter("warn", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "filtered")
	}
}

func BenchmarkMetrics_RecordEncode(b *testing.B) {
	m, _ := newTestMetrics(b)
	ctx := context.Background()
	meta := OpMeta{Name: "encode"}
	out := Outcome{Path: "full", InputLen: 40, Escaped: 3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RecordEncode(ctx, meta, out, time.Microsecond, nil)
	}
}

func BenchmarkMiddleware_Wrap(b *testing.B) {
	m, _ := newTestMetrics(b)
	mw := NewMiddleware(newNoopTracer(), m, NewLoggerWithWriter("info", io.Discard))
	fn := mw.Wrap(func(ctx context.Context, meta OpMeta, input string) (Outcome, error) {
		return Outcome{Output: input, Path: "verbatim", InputLen: len(input)}, nil
	})
	ctx := context.Background()
	meta := OpMeta{Name: "encode"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fn(ctx, meta, "/a/b")
	}
}
