// Package npf is the public printf-family front end over internal/engine.
// It supplies the convenience entry points a hosted C library would get
// for free (sprintf/snprintf/vsnprintf) around the allocation-free core:
// an allocating string wrapper, a bounded-buffer wrapper matching C
// snprintf's "total bytes that would have been written" return contract,
// and a Sink-driven wrapper for callers that already have their own
// destination.
package npf

import (
	"context"

	"github.com/xyproto/npf/internal/engine"
)

// Config mirrors engine.Config: one bool field per feature toggle.
// It is the package's public stand-in for the reference's compile-time
// NANOPRINTF_* switches.
type Config = engine.Config

// DefaultConfig returns a Config with every feature enabled.
func DefaultConfig() Config {
	return engine.DefaultConfig()
}

// Sink is the single-byte destination every entry point in this package
// ultimately drives. A Sink must never report failure; a sink backed by
// a bounded buffer that runs out of room still has to be called for
// every byte the core would have produced, so the returned count always
// matches hosted printf's would-be-written-length semantics.
type Sink = engine.Sink

// Sprintf formats according to format and args and returns the result as
// a freshly allocated string. The output buffer and string are allocated
// here, in the wrapper layer; internal/engine's package doc lists the
// smaller allocations the engine itself makes.
func Sprintf(format string, args ...any) string {
	var buf []byte
	sink := engine.SinkFunc(func(c byte) { buf = append(buf, c) })
	engine.Run(sink, engine.NewSliceCursor(args), format, engine.DefaultConfig())
	return string(buf)
}

// SprintfConfig is Sprintf with an explicit Config, for callers that need
// a feature subset (e.g. a build without float support).
func SprintfConfig(cfg Config, format string, args ...any) string {
	var buf []byte
	sink := engine.SinkFunc(func(c byte) { buf = append(buf, c) })
	engine.Run(sink, engine.NewSliceCursor(args), format, cfg)
	return string(buf)
}

// Snprintf writes at most len(buf)-1 bytes of the formatted result into
// buf followed by a NUL byte (nothing at all when len(buf) == 0), and
// returns the total number of bytes the format would have produced,
// excluding the NUL (C snprintf's contract: a return value >= len(buf)
// means truncation occurred). When cfg.SafeEmptyOnOverflow is set and the
// result would not fit, buf is zeroed instead of holding a truncated
// fragment, so a caller treating it as a NUL-terminated C string sees an
// empty string rather than truncated garbage (nanoprintf's
// NANOPRINTF_SNPRINTF_SAFE_EMPTY_STRING_ON_OVERFLOW).
func Snprintf(buf []byte, format string, args ...any) int {
	return SnprintfConfig(engine.DefaultConfig(), buf, format, args...)
}

// SnprintfConfig is Snprintf with an explicit Config.
func SnprintfConfig(cfg Config, buf []byte, format string, args ...any) int {
	bs := &boundedSink{buf: buf}
	n := engine.Run(bs, engine.NewSliceCursor(args), format, cfg)
	if len(buf) > 0 {
		buf[min(n, len(buf)-1)] = 0
	}
	if cfg.SafeEmptyOnOverflow && n >= len(buf) {
		for i := range buf {
			buf[i] = 0
		}
	}
	return n
}

// boundedSink writes into a fixed-capacity slice, silently dropping bytes
// once the slice fills, exactly as a C snprintf destination buffer does.
// It still counts every byte offered to it, which is what gives Snprintf
// its "total would-be-written length" return value.
type boundedSink struct {
	buf []byte
	n   int
}

func (b *boundedSink) WriteByte(c byte) {
	if b.n < len(b.buf) {
		b.buf[b.n] = c
	}
	b.n++
}

// Pprintf drives sink directly and returns the total number of bytes
// pushed to it, matching the underlying engine's return contract.
func Pprintf(sink Sink, format string, args ...any) int {
	return engine.Run(sink, engine.NewSliceCursor(args), format, engine.DefaultConfig())
}

// PprintfConfig is Pprintf with an explicit Config.
func PprintfConfig(cfg Config, sink Sink, format string, args ...any) int {
	return engine.Run(sink, engine.NewSliceCursor(args), format, cfg)
}

// PprintfCtx is Pprintf with cooperative cancellation: ctx.Err() is
// checked between directives, so a pathological format driving a slow
// sink (a network connection, a rate-limited fd) can be abandoned
// without blocking for the whole format string. The byte count returned
// reflects only what was actually pushed before cancellation.
func PprintfCtx(ctx context.Context, sink Sink, format string, args ...any) int {
	return engine.RunCtx(ctx, sink, engine.NewSliceCursor(args), format, engine.DefaultConfig())
}

// PprintfCtxConfig is PprintfCtx with an explicit Config.
func PprintfCtxConfig(ctx context.Context, cfg Config, sink Sink, format string, args ...any) int {
	return engine.RunCtx(ctx, sink, engine.NewSliceCursor(args), format, cfg)
}
