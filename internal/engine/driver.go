package engine

import (
	"context"
	"unsafe"
)

// countingSink wraps a caller Sink and tracks the running written-byte
// count threaded through the whole invocation (used both as Run's
// return value and as the value a '%n' directive writes back).
type countingSink struct {
	inner Sink
	n     int
}

func (c *countingSink) WriteByte(b byte) {
	c.inner.WriteByte(b)
	c.n++
}

// Run drives the Literal / Percent / Dispatch / End state machine over
// format, pulling typed arguments from cursor and pushing output bytes
// to sink. It returns the total number of bytes pushed, matching
// pprintf's return contract — the bounded-buffer snprintf contract is
// layered on top by package npf.
func Run(sink Sink, cursor ArgCursor, format string, cfg Config) int {
	cs := &countingSink{inner: sink}
	i := 0
	for i < len(format) {
		if format[i] != '%' {
			cs.WriteByte(format[i])
			i++
			continue
		}
		spec, consumed := ParseSpec(format[i:], cfg)
		if consumed == 0 {
			// Percent state, parse failure: push '%' literally and
			// resume scanning at the very next byte.
			cs.WriteByte('%')
			i++
			continue
		}
		width := resolveDynamic(&spec, cursor)
		dispatch(cs, cursor, spec, width, cfg)
		i += consumed
	}
	return cs.n
}

// RunCtx is Run with cooperative cancellation: ctx.Err() is checked once
// per directive (not once per byte — a literal run between directives
// always completes). A cancelled context stops the scan early and
// returns the byte count pushed so far, the same partial-progress
// contract Run's caller already gets from a Sink that stops accepting
// bytes mid-stream.
func RunCtx(ctx context.Context, sink Sink, cursor ArgCursor, format string, cfg Config) int {
	cs := &countingSink{inner: sink}
	i := 0
	for i < len(format) {
		if format[i] != '%' {
			cs.WriteByte(format[i])
			i++
			continue
		}
		if ctx.Err() != nil {
			return cs.n
		}
		spec, consumed := ParseSpec(format[i:], cfg)
		if consumed == 0 {
			cs.WriteByte('%')
			i++
			continue
		}
		width := resolveDynamic(&spec, cursor)
		dispatch(cs, cursor, spec, width, cfg)
		i += consumed
	}
	return cs.n
}

// resolveDynamic fetches a '*' width/precision argument and folds it
// into spec: a negative '*' width forces left_justify and takes the
// absolute value; a negative '*' precision becomes absent. A failed
// fetch (argument list exhausted) degrades to the same value an absent
// specifier would have produced, rather than aborting the whole
// invocation — no error ever unwinds out of this path.
func resolveDynamic(spec *FormatSpec, cursor ArgCursor) int {
	width := 0
	switch spec.WidthKind {
	case WidthLiteral:
		width = spec.Width
	case WidthStar:
		if n, ok := cursor.FetchInt(); ok {
			iv := int(n)
			if iv < 0 {
				spec.LeftJustify = true
				iv = -iv
			}
			width = iv
		}
	}

	if spec.PrecisionKind == PrecisionStar {
		n, ok := cursor.FetchInt()
		if !ok || n < 0 {
			spec.PrecisionKind = PrecisionAbsent
		} else {
			spec.PrecisionKind = PrecisionLiteral
			spec.Precision = int(n)
		}
	}
	return width
}

// pointerHexDigits is the zero-padded width %p uses for its address
// digits when Config.Precision is enabled: two hex digits per byte of a
// native pointer.
var pointerHexDigits = int(unsafe.Sizeof(uintptr(0))) * 2

// dispatch fetches the argument(s) one directive needs, converts, and
// hands the result to the assembler.
func dispatch(cs *countingSink, cursor ArgCursor, spec FormatSpec, width int, cfg Config) {
	switch spec.Conv {
	case ConvPercent:
		AssembleChar(cs, spec, width, '%')

	case ConvChar:
		v, _ := cursor.FetchInt()
		AssembleChar(cs, spec, width, byte(v))

	case ConvString:
		s, _ := cursor.FetchString()
		AssembleString(cs, spec, width, s)

	case ConvWriteback:
		if w, ok := cursor.FetchWriteback(); ok {
			w.Store(cs.n)
		}

	case ConvSignedInt:
		raw, _ := cursor.FetchInt()
		masked := int64(MaskWidth(uint64(raw), spec.LengthMod, true))
		mag, negative := AbsUnsigned(masked)
		digits := intDigits(spec, mag, 10, 0)
		sign := signByte(negative, spec.Sign)
		AssembleNumeric(cs, spec, width, sign, "", digits, precisionFloor(spec))

	case ConvUnsignedInt:
		raw, _ := cursor.FetchUint()
		mag := MaskWidth(raw, spec.LengthMod, false)
		digits := intDigits(spec, mag, 10, 0)
		AssembleNumeric(cs, spec, width, 0, "", digits, precisionFloor(spec))

	case ConvOctal:
		raw, _ := cursor.FetchUint()
		mag := MaskWidth(raw, spec.LengthMod, false)
		digits := intDigits(spec, mag, 8, 0)
		prefix := ""
		if spec.AltForm && (len(digits) == 0 || digits[0] != '0') {
			prefix = "0"
		}
		AssembleNumeric(cs, spec, width, 0, prefix, digits, precisionFloor(spec))

	case ConvHex:
		raw, _ := cursor.FetchUint()
		mag := MaskWidth(raw, spec.LengthMod, false)
		digits := intDigits(spec, mag, 16, spec.CaseShift)
		prefix := ""
		if spec.AltForm && mag != 0 {
			if spec.Upper() {
				prefix = "0X"
			} else {
				prefix = "0x"
			}
		}
		AssembleNumeric(cs, spec, width, 0, prefix, digits, precisionFloor(spec))

	case ConvBinary:
		raw, _ := cursor.FetchUint()
		mag := MaskWidth(raw, spec.LengthMod, false)
		digits := intDigits(spec, mag, 2, 0)
		prefix := ""
		if spec.AltForm && mag != 0 {
			if spec.Upper() {
				prefix = "0B"
			} else {
				prefix = "0b"
			}
		}
		AssembleNumeric(cs, spec, width, 0, prefix, digits, precisionFloor(spec))

	case ConvPointer:
		p, _ := cursor.FetchPointer()
		var scratch Scratch
		k := ItoaRev(uint64(p), 16, caseShiftMask, &scratch)
		reverse(scratch[:k])
		precisionMin := 0
		if cfg.Precision {
			precisionMin = pointerHexDigits
		}
		AssembleNumeric(cs, spec, width, 0, "0x", scratch[:k], precisionMin)

	case ConvFloatDec, ConvFloatSci, ConvFloatShortest, ConvFloatHex:
		v, _ := cursor.FetchFloat()
		var buf [160]byte
		result := FormatFloat(buf[:0], v, spec, cfg)
		fspec := spec
		if result.ForceNoZeroPd {
			fspec.ZeroPad = false
		}
		AssembleNumeric(cs, fspec, width, result.Sign, result.Prefix, result.Body, 0)
	}
}

// intDigits renders mag in the given radix as forward (most-significant
// first) digits. An explicit ".0" precision on a zero value emits no
// digits at all rather than a lone "0".
func intDigits(spec FormatSpec, mag uint64, radix int, caseShift byte) []byte {
	var scratch Scratch
	k := ItoaRev(mag, radix, caseShift, &scratch)
	reverse(scratch[:k])
	if mag == 0 && spec.PrecisionKind == PrecisionLiteral && spec.Precision == 0 {
		return scratch[:0]
	}
	return scratch[:k]
}

// precisionFloor returns the integer path's Pn (minimum digit count), or
// 0 when no precision was given.
func precisionFloor(spec FormatSpec) int {
	if spec.PrecisionKind == PrecisionAbsent {
		return 0
	}
	return spec.Precision
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
