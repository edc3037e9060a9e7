package npf

import (
	"context"
	"testing"
)

func TestSprintfSeedTable(t *testing.T) {
	cases := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"1", "%d", []any{int(-2147483648)}, "-2147483648"},
		{"2", "%+05d", []any{int(42)}, "+0042"},
		{"3", "%-10s|", []any{"hi"}, "hi        |"},
		{"4", "%#x", []any{0xABCD}, "0xabcd"},
		{"5", "%.3f", []any{1.5}, "1.500"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Sprintf(c.format, c.args...)
			if got != c.want {
				t.Errorf("Sprintf(%q) = %q, want %q", c.format, got, c.want)
			}
		})
	}
}

func TestSprintfZeroIsOneDigit(t *testing.T) {
	for _, f := range []string{"%d", "%u", "%o", "%x", "%b"} {
		got := Sprintf(f, uint(0))
		if got != "0" {
			t.Errorf("%s of 0 = %q, want %q", f, got, "0")
		}
	}
}

func TestSprintfPrecisionZeroOnZeroIsEmpty(t *testing.T) {
	got := Sprintf("[%.0d]", 0)
	if got != "[]" {
		t.Errorf("got %q, want %q", got, "[]")
	}
}

func TestSprintfFlagDuplicatesAreIdempotent(t *testing.T) {
	a := Sprintf("%---d", 5)
	b := Sprintf("%-d", 5)
	if a != b {
		t.Errorf("%%---d = %q, %%-d = %q, want equal", a, b)
	}
}

func TestSprintfWritebackStoresRunningCount(t *testing.T) {
	var n int
	got := Sprintf("hello%n world", &n)
	if got != "hello world" {
		t.Errorf("got %q", got)
	}
	if n != 5 {
		t.Errorf("writeback stored %d, want 5", n)
	}
}

// TestSnprintfBoundedWrite exercises C snprintf's own contract: the
// return value is the length that *would* have been written, while at
// most len(buf)-1 bytes are actually copied in, followed by a NUL.
func TestSnprintfBoundedWrite(t *testing.T) {
	buf := make([]byte, 5)
	n := Snprintf(buf, "%s", "hello world")
	if n != 11 {
		t.Errorf("return = %d, want 11 (total would-be-written length)", n)
	}
	if string(buf) != "hell\x00" {
		t.Errorf("buf = %q, want %q", buf, "hell\x00")
	}
}

func TestSnprintfShortResultFits(t *testing.T) {
	buf := make([]byte, 5)
	n := Snprintf(buf, "%s", "hi")
	if n != 2 {
		t.Errorf("return = %d, want 2", n)
	}
	if string(buf[:2]) != "hi" {
		t.Errorf("buf[:2] = %q, want %q", buf[:2], "hi")
	}
}

func TestSnprintfSafeEmptyOnOverflow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SafeEmptyOnOverflow = true

	buf := make([]byte, 5)
	for i := range buf {
		buf[i] = 'X'
	}
	n := SnprintfConfig(cfg, buf, "%s", "hello world")
	if n != 11 {
		t.Errorf("return = %d, want 11", n)
	}
	for i, b := range buf {
		if b != 0 {
			t.Errorf("buf[%d] = %q, want zeroed after overflow with SafeEmptyOnOverflow", i, b)
		}
	}
}

func TestSnprintfSafeEmptyOnOverflowLeavesFittingResultAlone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SafeEmptyOnOverflow = true

	buf := make([]byte, 5)
	n := SnprintfConfig(cfg, buf, "%s", "hi")
	if n != 2 {
		t.Errorf("return = %d, want 2", n)
	}
	if string(buf[:2]) != "hi" {
		t.Errorf("buf[:2] = %q, want %q (fits, should not be zeroed)", buf[:2], "hi")
	}
}

func TestPprintfDrivesCustomSink(t *testing.T) {
	sink := NewBufferSink(16)
	n := Pprintf(sink, "%d-%d", 1, 2)
	if sink.String() != "1-2" {
		t.Errorf("got %q", sink.String())
	}
	if n != len(sink.String()) {
		t.Errorf("return %d != len(output) %d", n, len(sink.String()))
	}
}

func TestPprintfCtxStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := NewBufferSink(16)
	n := PprintfCtx(ctx, sink, "literal %d more", 1)
	// "literal " is plain text and always copies in full before the first
	// directive's cancellation check; the %d that follows must not run.
	if got := sink.String(); got != "literal " {
		t.Errorf("got %q, want %q", got, "literal ")
	}
	if n != len("literal ") {
		t.Errorf("return = %d, want %d", n, len("literal "))
	}
}

func TestPprintfCtxRunsToCompletionWhenNotCancelled(t *testing.T) {
	sink := NewBufferSink(16)
	n := PprintfCtx(context.Background(), sink, "%d-%d", 1, 2)
	if sink.String() != "1-2" {
		t.Errorf("got %q", sink.String())
	}
	if n != 3 {
		t.Errorf("return = %d, want 3", n)
	}
}
