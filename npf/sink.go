package npf

import "github.com/xyproto/npf/internal/engine"

// BufferSink accumulates written bytes into a growable []byte, for
// callers that want the engine.Sink shape without Sprintf's final
// string conversion (e.g. to reuse one buffer across many calls).
type BufferSink struct {
	buf []byte
}

// NewBufferSink returns a BufferSink with an initial capacity hint.
func NewBufferSink(capHint int) *BufferSink {
	return &BufferSink{buf: make([]byte, 0, capHint)}
}

func (b *BufferSink) WriteByte(c byte) { b.buf = append(b.buf, c) }

// Bytes returns the accumulated bytes. The returned slice aliases the
// sink's internal buffer; copy it before calling Reset if it must
// outlive the next use.
func (b *BufferSink) Bytes() []byte { return b.buf }

// String returns the accumulated bytes as a string.
func (b *BufferSink) String() string { return string(b.buf) }

// Reset empties the buffer for reuse, keeping the underlying array.
func (b *BufferSink) Reset() { b.buf = b.buf[:0] }

var _ engine.Sink = (*BufferSink)(nil)
