//go:build unix

package npf

import "golang.org/x/sys/unix"

// rawFDSinkBufSize is the batch size RawFDSink accumulates before issuing
// a unix.Write; one syscall per directive would dominate runtime on a
// format string with many small conversions.
const rawFDSinkBufSize = 512

// RawFDSink writes formatted output straight to a file descriptor via
// unix.Write, bypassing os.File's own buffering. It is the Go-idiomatic
// counterpart of a hosted printf backed directly by the write(2)
// syscall: no libc stdio layer in between.
type RawFDSink struct {
	fd  int
	buf []byte
}

// NewRawFDSink returns a RawFDSink targeting fd (e.g. 1 for stdout, or a
// raw socket/pipe descriptor). Call Flush when done, or after the final
// WriteByte of a batch, to push any partially-filled buffer out.
func NewRawFDSink(fd int) *RawFDSink {
	return &RawFDSink{fd: fd, buf: make([]byte, 0, rawFDSinkBufSize)}
}

func (s *RawFDSink) WriteByte(c byte) {
	s.buf = append(s.buf, c)
	if len(s.buf) == cap(s.buf) {
		s.Flush()
	}
}

// Flush pushes any buffered bytes to the file descriptor. A short write
// from unix.Write is retried against the remainder until the buffer
// drains or a write error stalls it; a stalled write silently stops
// retrying, matching the Sink contract's "never report failure" rule —
// the caller already has the byte count Run/Pprintf returned.
func (s *RawFDSink) Flush() {
	rest := s.buf
	for len(rest) > 0 {
		n, err := unix.Write(s.fd, rest)
		if n <= 0 || err != nil {
			break
		}
		rest = rest[n:]
	}
	s.buf = s.buf[:0]
}
