package engine

// ParseSpec decodes one '%...' directive starting at format[0] == '%' and
// returns the populated FormatSpec plus the number of bytes consumed
// (including the leading '%' and the terminating conversion letter).
//
// A return of consumed == 0 means malformed: format[0] was not '%', or no
// valid grammar path reached a conversion letter before the format string
// ended. The driver's contract ("Percent" state) is to copy the '%' byte
// literally and resume scanning at the next byte in that case —
// ParseSpec itself never reads past len(format).
//
// Grammar, in order: %  flags*  width?  ('.' precision?)?  length_mod?  conv
func ParseSpec(format string, cfg Config) (FormatSpec, int) {
	var spec FormatSpec
	if len(format) == 0 || format[0] != '%' {
		return spec, 0
	}
	i := 1

	i = parseFlags(format, i, &spec, cfg)

	if cfg.FieldWidth {
		i = parseWidth(format, i, &spec)
	}

	if cfg.Precision {
		i = parsePrecision(format, i, &spec)
	}

	var ok bool
	i, ok = parseLengthMod(format, i, &spec, cfg)
	if !ok {
		return FormatSpec{}, 0
	}

	if i >= len(format) {
		return FormatSpec{}, 0
	}
	consumedConv, ok := parseConv(format[i], &spec, cfg)
	if !ok {
		return FormatSpec{}, 0
	}
	i += consumedConv

	normalizeSpec(&spec)
	return spec, i
}

// parseFlags repeatedly consumes one of -+ #0 in any order and any
// multiplicity; duplicates are idempotent. '+' masks a concurrent space
// to none, and '-' masks a concurrent zero-pad to none. '#' is only
// recognized when cfg.AltForm is enabled — disabled, it stops the flag
// scan in its tracks exactly like an unrecognized character would,
// leaving it for a later stage to choke on, the same "feature compiled
// out" degradation the length-modifier and conversion-letter gates use.
func parseFlags(format string, i int, spec *FormatSpec, cfg Config) int {
	for i < len(format) {
		switch format[i] {
		case '-':
			spec.LeftJustify = true
			spec.ZeroPad = false
		case '+':
			spec.Sign = SignPlus
		case ' ':
			if spec.Sign != SignPlus {
				spec.Sign = SignSpace
			}
		case '#':
			if !cfg.AltForm {
				return i
			}
			spec.AltForm = true
		case '0':
			if !spec.LeftJustify {
				spec.ZeroPad = true
			}
		default:
			return i
		}
		i++
	}
	return i
}

// parseWidth handles a single '*' (star) or a run of decimal digits
// (literal); absence leaves WidthKind at its zero value, WidthAbsent.
func parseWidth(format string, i int, spec *FormatSpec) int {
	if i >= len(format) {
		return i
	}
	if format[i] == '*' {
		spec.WidthKind = WidthStar
		return i + 1
	}
	if isDigit(format[i]) {
		n, next := scanDecimal(format, i)
		spec.WidthKind = WidthLiteral
		spec.Width = n
		return next
	}
	return i
}

// parsePrecision consumes a leading '.', then '*' (star), digits
// (literal), or nothing (literal 0). A '-' right after '.' means the
// precision is absent rather than negative.
func parsePrecision(format string, i int, spec *FormatSpec) int {
	if i >= len(format) || format[i] != '.' {
		return i
	}
	i++
	if i < len(format) && format[i] == '*' {
		spec.PrecisionKind = PrecisionStar
		return i + 1
	}
	if i < len(format) && format[i] == '-' {
		_, next := scanDecimal(format, i+1)
		spec.PrecisionKind = PrecisionAbsent
		return next
	}
	if i < len(format) && isDigit(format[i]) {
		n, next := scanDecimal(format, i)
		spec.PrecisionKind = PrecisionLiteral
		spec.Precision = n
		return next
	}
	spec.PrecisionKind = PrecisionLiteral
	spec.Precision = 0
	return i
}

// parseLengthMod recognizes the two-character modifiers ("hh", "ll")
// before the one-character ones, so "hh" is never misread as "h"
// followed by a stray 'h'. A modifier gated off by cfg (LargeTypes/
// SmallTypes) is treated as malformed, matching the reference's
// "feature compiled out" behavior.
func parseLengthMod(format string, i int, spec *FormatSpec, cfg Config) (int, bool) {
	two := ""
	if i+1 < len(format) {
		two = format[i : i+2]
	}
	switch two {
	case "hh":
		if !cfg.SmallTypes {
			return i, false
		}
		spec.LengthMod = LenHH
		return i + 2, true
	case "ll":
		if !cfg.LargeTypes {
			return i, false
		}
		spec.LengthMod = LenLL
		return i + 2, true
	}
	if i >= len(format) {
		return i, true
	}
	switch format[i] {
	case 'h':
		if !cfg.SmallTypes {
			return i, false
		}
		spec.LengthMod = LenH
		return i + 1, true
	case 'l':
		spec.LengthMod = LenL
		return i + 1, true
	case 'j':
		if !cfg.LargeTypes {
			return i, false
		}
		spec.LengthMod = LenJ
		return i + 1, true
	case 'z':
		if !cfg.LargeTypes {
			return i, false
		}
		spec.LengthMod = LenZ
		return i + 1, true
	case 't':
		if !cfg.LargeTypes {
			return i, false
		}
		spec.LengthMod = LenT
		return i + 1, true
	case 'L':
		spec.LengthMod = LenBigL
		return i + 1, true
	}
	return i, true
}

// parseConv maps the terminating letter to Conv + CaseShift. Returns the
// number of bytes the conversion letter itself occupies (always 1) and
// false if the byte isn't a recognized conversion, or names a feature
// cfg has disabled.
func parseConv(c byte, spec *FormatSpec, cfg Config) (int, bool) {
	switch c {
	case '%':
		spec.Conv = ConvPercent
	case 'c':
		spec.Conv = ConvChar
	case 's':
		spec.Conv = ConvString
	case 'd', 'i':
		spec.Conv = ConvSignedInt
	case 'u':
		spec.Conv = ConvUnsignedInt
	case 'o':
		spec.Conv = ConvOctal
	case 'x':
		spec.Conv = ConvHex
		spec.CaseShift = caseShiftMask
	case 'X':
		spec.Conv = ConvHex
	case 'b':
		if !cfg.Binary {
			return 0, false
		}
		spec.Conv = ConvBinary
		spec.CaseShift = caseShiftMask
	case 'B':
		if !cfg.Binary {
			return 0, false
		}
		spec.Conv = ConvBinary
	case 'p':
		spec.Conv = ConvPointer
		spec.CaseShift = caseShiftMask
	case 'n':
		if !cfg.Writeback {
			return 0, false
		}
		spec.Conv = ConvWriteback
	case 'f':
		if !cfg.Float {
			return 0, false
		}
		spec.Conv = ConvFloatDec
		spec.CaseShift = caseShiftMask
	case 'F':
		if !cfg.Float {
			return 0, false
		}
		spec.Conv = ConvFloatDec
	case 'e':
		if !cfg.Float {
			return 0, false
		}
		spec.Conv = ConvFloatSci
		spec.CaseShift = caseShiftMask
	case 'E':
		if !cfg.Float {
			return 0, false
		}
		spec.Conv = ConvFloatSci
	case 'g':
		if !cfg.Float {
			return 0, false
		}
		spec.Conv = ConvFloatShortest
		spec.CaseShift = caseShiftMask
	case 'G':
		if !cfg.Float {
			return 0, false
		}
		spec.Conv = ConvFloatShortest
	case 'a':
		if !cfg.Float || !cfg.FloatHex {
			return 0, false
		}
		spec.Conv = ConvFloatHex
		spec.CaseShift = caseShiftMask
	case 'A':
		if !cfg.Float || !cfg.FloatHex {
			return 0, false
		}
		spec.Conv = ConvFloatHex
	default:
		return 0, false
	}
	return 1, true
}

// normalizeSpec applies post-parse normalization: some conversions
// ignore grammar that was nonetheless syntactically accepted above.
func normalizeSpec(spec *FormatSpec) {
	switch spec.Conv {
	case ConvPercent, ConvChar, ConvWriteback:
		spec.PrecisionKind = PrecisionAbsent
	case ConvPointer:
		// The address field's digit width is a fixed property of the
		// pointer's native size, chosen by the assembler/driver; a
		// parsed precision on %p is ignored rather than honored.
		spec.PrecisionKind = PrecisionAbsent
	}

	if spec.Conv == ConvString || spec.Conv == ConvWriteback {
		spec.ZeroPad = false
	}

	switch spec.Conv {
	case ConvSignedInt, ConvUnsignedInt, ConvOctal, ConvHex, ConvBinary:
		if spec.PrecisionKind != PrecisionAbsent {
			spec.ZeroPad = false
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func scanDecimal(format string, i int) (int, int) {
	n := 0
	for i < len(format) && isDigit(format[i]) {
		n = n*10 + int(format[i]-'0')
		i++
	}
	return n, i
}
