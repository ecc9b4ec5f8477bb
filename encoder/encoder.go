package encoder

import (
	"context"
	"fmt"

	"github.com/jonwraymond/urlsafe/cache"
	"github.com/jonwraymond/urlsafe/charset"
	"github.com/jonwraymond/urlsafe/escape"
	"github.com/jonwraymond/urlsafe/observe"
	"github.com/jonwraymond/urlsafe/surrogate"
)

// Encode returns s with unsafe characters percent-encoded. It never
// consults a cache.
func Encode(s string) string {
	if charset.Verbatim(s) {
		return s
	}
	return transform(s)
}

func transform(s string) string {
	return escape.String(surrogate.Repair(s))
}

// Encoder encodes URLs through an owned result cache.
//
// Contract:
//   - Concurrency: safe for concurrent use when its cache is (the built-in
//     caches are).
//   - Determinism: a cached result is byte-identical to a fresh computation.
//   - Errors: string encoding never fails.
type Encoder struct {
	memo   *cache.Memoizer
	mw     *observe.Middleware
	logger observe.Logger
	scope  string

	encodeFn observe.EncodeFunc
}

// Option configures an Encoder.
type Option func(*options)

type options struct {
	cache  cache.Cache
	mw     *observe.Middleware
	logger observe.Logger
	scope  string
}

// WithCache replaces the cache built from Config. The Config still decides
// which inputs are eligible.
func WithCache(c cache.Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithMiddleware instruments EncodeContext and EncodeUTF16Bytes.
func WithMiddleware(mw *observe.Middleware) Option {
	return func(o *options) { o.mw = mw }
}

// WithLogger sets the logger for lifecycle messages. When unset the
// middleware's logger is used, or nothing is logged.
func WithLogger(l observe.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithScope sets the OpMeta scope reported to telemetry.
func WithScope(scope string) Option {
	return func(o *options) { o.scope = scope }
}

// New creates an Encoder.
func New(cfg Config, opts ...Option) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := o.cache
	if c == nil {
		var err error
		if c, err = cfg.newCache(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	memo, err := cache.NewMemoizer(c, cfg.Policy())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	logger := o.logger
	switch {
	case logger != nil:
	case o.mw != nil:
		logger = o.mw.Logger()
	default:
		logger = observe.NopLogger()
	}

	e := &Encoder{
		memo:   memo,
		mw:     o.mw,
		logger: logger,
		scope:  o.scope,
	}
	if e.mw != nil {
		e.encodeFn = e.mw.Wrap(e.observed)
	}

	e.logger.WithOp(e.meta("new")).Debug(context.Background(), "encoder created",
		observe.Field{Key: "cache_capacity", Value: cfg.CacheCapacity},
		observe.Field{Key: "max_cached_length", Value: cfg.MaxCachedLength},
		observe.Field{Key: "shards", Value: max(cfg.Shards, 1)},
		observe.Field{Key: "custom_cache", Value: o.cache != nil},
	)

	return e, nil
}

func (e *Encoder) meta(name string) observe.OpMeta {
	return observe.OpMeta{Scope: e.scope, Name: name}
}

// Encode returns s with unsafe characters percent-encoded, consulting and
// filling the cache. It never fails.
func (e *Encoder) Encode(s string) string {
	out, _ := e.encode(s)
	return out
}

func (e *Encoder) encode(s string) (string, Path) {
	if out, ok := e.memo.Peek(s); ok {
		return out, PathCached
	}

	if charset.Verbatim(s) {
		e.memo.Store(s, s)
		return s, PathVerbatim
	}

	return e.memo.Fill(s, transform), PathFull
}

// EncodeContext is Encode reported through the configured middleware.
// Without middleware it is equivalent to Encode.
func (e *Encoder) EncodeContext(ctx context.Context, s string) string {
	if e.encodeFn == nil {
		return e.Encode(s)
	}
	out, _ := e.encodeFn(ctx, e.meta("encode"), s)
	return out.Output
}

func (e *Encoder) observed(_ context.Context, _ observe.OpMeta, s string) (observe.Outcome, error) {
	out, path := e.encode(s)

	// Every escaped byte grows the repaired input by two. Cached results
	// count the same as fresh ones.
	escaped := 0
	if out != s {
		escaped = (len(out) - len(surrogate.Repair(s))) / 2
	}

	return observe.Outcome{
		Output:   out,
		Path:     path.String(),
		InputLen: len(s),
		Escaped:  escaped,
	}, nil
}

// EncodeUTF16 encodes a string given as UTF-16 code units. Unmatched
// surrogates become U+FFFD.
func (e *Encoder) EncodeUTF16(units []uint16) string {
	return e.Encode(surrogate.DecodeUTF16(units))
}

// EncodeUTF16Bytes decodes a UTF-16 byte stream and encodes the result.
// Only malformed streams fail; see surrogate.FromUTF16Bytes.
func (e *Encoder) EncodeUTF16Bytes(ctx context.Context, b []byte, order surrogate.ByteOrder) (string, error) {
	if e.mw == nil {
		s, err := surrogate.FromUTF16Bytes(b, order)
		if err != nil {
			return "", err
		}
		return e.Encode(s), nil
	}

	fn := e.mw.Wrap(func(ctx context.Context, meta observe.OpMeta, _ string) (observe.Outcome, error) {
		s, err := surrogate.FromUTF16Bytes(b, order)
		if err != nil {
			return observe.Outcome{InputLen: len(b)}, err
		}
		out, err := e.observed(ctx, meta, s)
		out.InputLen = len(b)
		return out, err
	})

	out, err := fn(ctx, e.meta("encode_utf16_bytes"), "")
	if err != nil {
		return "", err
	}
	return out.Output, nil
}

// EncodeValue encodes v after converting it to a string.
//
// Strings, byte slices and rune slices are used as is; []uint16 is read as
// UTF-16; fmt.Stringer and error use their text; nil is the empty string;
// anything else is formatted with fmt.Sprint.
func (e *Encoder) EncodeValue(v any) string {
	switch x := v.(type) {
	case nil:
		return e.Encode("")
	case string:
		return e.Encode(x)
	case []byte:
		return e.Encode(string(x))
	case []rune:
		return e.Encode(string(x))
	case []uint16:
		return e.EncodeUTF16(x)
	case fmt.Stringer:
		return e.Encode(x.String())
	case error:
		return e.Encode(x.Error())
	default:
		return e.Encode(fmt.Sprint(v))
	}
}

// Lookup reports which path Encode would take for s, without computing or
// storing anything.
func (e *Encoder) Lookup(s string) Path {
	if _, ok := e.memo.Peek(s); ok {
		return PathCached
	}
	if charset.Verbatim(s) {
		return PathVerbatim
	}
	return PathFull
}

// Stats returns the cache counters when the cache keeps them.
func (e *Encoder) Stats() (cache.Stats, bool) {
	type statser interface {
		Stats() cache.Stats
	}
	if s, ok := e.memo.Cache().(statser); ok {
		return s.Stats(), true
	}
	return cache.Stats{}, false
}

// Len returns the number of cached results.
func (e *Encoder) Len() int {
	return e.memo.Cache().Len()
}
