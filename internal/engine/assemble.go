package engine

// AssembleNumeric combines sign, prefix, zero-padding, a minimum-digit
// floor driven by precision (integer conversions only — callers pass 0
// for float), and the already-rendered digit stream, then writes the
// result to sink in the flag-dependent order. It returns the number of
// bytes written, which is always >= len(digits)+len(prefix)+lenSign(sign):
// field width only pads, it never truncates content.
func AssembleNumeric(sink Sink, spec FormatSpec, width int, sign byte, prefix string, digits []byte, precisionMin int) int {
	signLen := 0
	if sign != 0 {
		signLen = 1
	}
	leadingZeros := precisionMin - len(digits)
	if leadingZeros < 0 {
		leadingZeros = 0
	}
	contentLen := len(digits) + leadingZeros + signLen + len(prefix)
	padTotal := width - contentLen
	if padTotal < 0 {
		padTotal = 0
	}

	n := 0
	emit := func(c byte) { sink.WriteByte(c); n++ }
	emitStr := func(s string) {
		for i := 0; i < len(s); i++ {
			emit(s[i])
		}
	}
	emitRepeat := func(c byte, count int) {
		for i := 0; i < count; i++ {
			emit(c)
		}
	}
	emitSignPrefix := func() {
		if sign != 0 {
			emit(sign)
		}
		emitStr(prefix)
	}
	emitBody := func() {
		emitRepeat('0', leadingZeros)
		for _, d := range digits {
			emit(d)
		}
	}

	switch {
	case spec.LeftJustify:
		emitSignPrefix()
		emitBody()
		emitRepeat(' ', padTotal)
	case spec.ZeroPad:
		emitSignPrefix()
		emitRepeat('0', padTotal)
		emitBody()
	default:
		emitRepeat(' ', padTotal)
		emitSignPrefix()
		emitBody()
	}
	return n
}

// AssembleString handles the string conversion: a precision (when the
// directive carried one) clamps the input to at most that many bytes
// rather than setting a minimum, and the pad character is always a
// space regardless of the '0' flag.
func AssembleString(sink Sink, spec FormatSpec, width int, s string) int {
	if spec.PrecisionKind != PrecisionAbsent && spec.Precision < len(s) {
		s = s[:spec.Precision]
	}
	padTotal := width - len(s)
	if padTotal < 0 {
		padTotal = 0
	}

	n := 0
	emit := func(c byte) { sink.WriteByte(c); n++ }
	emitStr := func() {
		for i := 0; i < len(s); i++ {
			emit(s[i])
		}
	}
	emitPad := func() {
		for i := 0; i < padTotal; i++ {
			emit(' ')
		}
	}

	if spec.LeftJustify {
		emitStr()
		emitPad()
	} else {
		emitPad()
		emitStr()
	}
	return n
}

// AssembleChar handles the char conversion: the single byte is
// surrounded by width-driven spaces per left_justify; zero-pad and
// precision never apply (the '0' flag is ignored here, and normalizeSpec
// already strips the precision).
func AssembleChar(sink Sink, spec FormatSpec, width int, c byte) int {
	padTotal := width - 1
	if padTotal < 0 {
		padTotal = 0
	}

	n := 0
	emit := func(b byte) { sink.WriteByte(b); n++ }
	emitPad := func() {
		for i := 0; i < padTotal; i++ {
			emit(' ')
		}
	}

	if spec.LeftJustify {
		emit(c)
		emitPad()
	} else {
		emitPad()
		emit(c)
	}
	return n
}
