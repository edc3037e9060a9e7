// Package engine implements the conversion-by-conversion formatting core
// shared by package npf's snprintf-family entry points.
//
// Every exported type here is stack-shaped: FormatSpec is a plain value,
// the digit scratch buffers the converters use are fixed-size arrays, and
// nothing in this package retains a reference past the call that produced
// it. Stack placement is left to Go's escape analysis and is not
// guaranteed, and the package is not allocation-free: Run and RunCtx
// heap-allocate their byte counter, each integer conversion's scratch
// array escapes to the heap (intDigits returns a slice of it), and
// NewSliceCursor allocates its cursor.
package engine
