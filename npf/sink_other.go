//go:build !unix

package npf

import "os"

// RawFDSink falls back to buffered writes against os.Stdout on
// non-Unix targets, where golang.org/x/sys/unix has no Write syscall to
// wrap. fd is accepted for API symmetry with the Unix build but ignored.
type RawFDSink struct {
	buf []byte
}

const rawFDSinkBufSize = 512

// NewRawFDSink returns a RawFDSink. fd is ignored on this platform;
// output always goes to os.Stdout.
func NewRawFDSink(fd int) *RawFDSink {
	return &RawFDSink{buf: make([]byte, 0, rawFDSinkBufSize)}
}

func (s *RawFDSink) WriteByte(c byte) {
	s.buf = append(s.buf, c)
	if len(s.buf) == cap(s.buf) {
		s.Flush()
	}
}

// Flush pushes any buffered bytes to os.Stdout.
func (s *RawFDSink) Flush() {
	if len(s.buf) == 0 {
		return
	}
	os.Stdout.Write(s.buf)
	s.buf = s.buf[:0]
}
