package engine

import "unsafe"

// ArgCursor is a positional, side-effecting fetch of the next argument
// of a stated kind — the Go-shaped counterpart of a variadic fetch
// contract. The driver picks which Fetch method to call from Conv plus
// LengthMod; FetchInt/FetchUint return the argument's full-width, sign-
// or zero-extended native value and leave width-masking (hh/h/l/ll/j/z/t)
// to the integer converter.
//
// A mismatched or exhausted fetch reports ok=false; the driver then
// formats the zero value of that kind (a failed '*' fetch counts as an
// absent width or precision, and a failed '%n' fetch stores nothing)
// rather than panicking — ArgCursor never unwinds.
type ArgCursor interface {
	FetchInt() (v int64, ok bool)
	FetchUint() (v uint64, ok bool)
	FetchFloat() (v float64, ok bool)
	FetchString() (s string, ok bool)
	FetchPointer() (p uintptr, ok bool)
	FetchWriteback() (w Writeback, ok bool)
}

// Writeback receives the running written-byte count for a '%n' directive.
// Concrete implementations wrap a pointer to one of the native integer
// widths; Store truncates to that width the same way a C write through an
// 'int *'/'short *'/'long *' would.
type Writeback interface {
	Store(n int)
}

type intWriteback struct{ p *int }

func (w intWriteback) Store(n int) { *w.p = n }

type int8Writeback struct{ p *int8 }

func (w int8Writeback) Store(n int) { *w.p = int8(n) }

type int16Writeback struct{ p *int16 }

func (w int16Writeback) Store(n int) { *w.p = int16(n) }

type int32Writeback struct{ p *int32 }

func (w int32Writeback) Store(n int) { *w.p = int32(n) }

type int64Writeback struct{ p *int64 }

func (w int64Writeback) Store(n int) { *w.p = int64(n) }

// SliceCursor is the default ArgCursor, built directly from a Go variadic
// argument slice. It is the idiomatic replacement for C's va_list cursor:
// Go's own calling convention already boxed each argument into the
// []any, so SliceCursor's job is narrower than a va_arg macro's — pure
// positional indexing plus a type switch bounded to a finite kind set.
// It never uses reflect.
type SliceCursor struct {
	args []any
	pos  int
}

// NewSliceCursor wraps args for sequential typed fetches starting at the
// first element.
func NewSliceCursor(args []any) *SliceCursor {
	return &SliceCursor{args: args}
}

func (c *SliceCursor) next() (any, bool) {
	if c.pos >= len(c.args) {
		return nil, false
	}
	v := c.args[c.pos]
	c.pos++
	return v, true
}

func (c *SliceCursor) FetchInt() (int64, bool) {
	v, ok := c.next()
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	case uintptr:
		return int64(x), true
	default:
		return 0, false
	}
}

func (c *SliceCursor) FetchUint() (uint64, bool) {
	v, ok := c.FetchInt()
	return uint64(v), ok
}

func (c *SliceCursor) FetchFloat() (float64, bool) {
	v, ok := c.next()
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	default:
		return 0, false
	}
}

func (c *SliceCursor) FetchString() (string, bool) {
	v, ok := c.next()
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	default:
		return "", false
	}
}

func (c *SliceCursor) FetchPointer() (uintptr, bool) {
	v, ok := c.next()
	if !ok {
		return 0, false
	}
	if v == nil {
		return 0, true
	}
	switch x := v.(type) {
	case uintptr:
		return x, true
	case unsafe.Pointer:
		return uintptr(x), true
	default:
		return 0, false
	}
}

func (c *SliceCursor) FetchWriteback() (Writeback, bool) {
	v, ok := c.next()
	if !ok {
		return nil, false
	}
	switch p := v.(type) {
	case *int:
		return intWriteback{p}, true
	case *int8:
		return int8Writeback{p}, true
	case *int16:
		return int16Writeback{p}, true
	case *int32:
		return int32Writeback{p}, true
	case *int64:
		return int64Writeback{p}, true
	default:
		return nil, false
	}
}
