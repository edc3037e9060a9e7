package engine

// SignPrefix selects which character, if any, precedes a non-negative
// signed numeric conversion. '+' always wins over a concurrent space.
type SignPrefix int

const (
	SignNone SignPrefix = iota
	SignPlus
	SignSpace
)

// WidthKind distinguishes an absent field width from a literal one parsed
// out of the format string or one fetched from the argument list via '*'.
type WidthKind int

const (
	WidthAbsent WidthKind = iota
	WidthLiteral
	WidthStar
)

// PrecisionKind mirrors WidthKind for the precision sub-specifier.
type PrecisionKind int

const (
	PrecisionAbsent PrecisionKind = iota
	PrecisionLiteral
	PrecisionStar
)

// LengthMod is the argument-size modifier preceding the conversion letter.
type LengthMod int

const (
	LenNone LengthMod = iota
	LenHH             // hh
	LenH              // h
	LenL              // l
	LenLL             // ll
	LenJ              // j  (intmax_t/uintmax_t)
	LenZ              // z  (size_t)
	LenT              // t  (ptrdiff_t)
	LenBigL           // L  (long double; accepted, treated as double)
)

// Conv is the normalized conversion kind a directive resolves to.
type Conv int

const (
	ConvPercent Conv = iota
	ConvChar
	ConvString
	ConvSignedInt
	ConvUnsignedInt
	ConvOctal
	ConvHex
	ConvBinary
	ConvPointer
	ConvWriteback
	ConvFloatDec
	ConvFloatSci
	ConvFloatShortest
	ConvFloatHex
)

// caseShiftMask is 'a'-'A', the bit that separates an ASCII lowercase
// letter from its uppercase form. Lowercase conversions carry it in
// FormatSpec.CaseShift; uppercase ones carry 0, and the converters then
// subtract it from a lowercase a-f digit to produce 'A'-'F'.
const caseShiftMask = 'a' - 'A'

// FormatSpec is one parsed '%' directive. It is a plain value: callers
// pass it by value or by pointer to a stack-local instance, and it never
// escapes the call that parsed it except to be read by the driver that
// dispatches on Conv.
type FormatSpec struct {
	LeftJustify bool
	Sign        SignPrefix
	AltForm     bool
	ZeroPad     bool

	WidthKind WidthKind
	Width     int

	PrecisionKind PrecisionKind
	Precision     int

	LengthMod LengthMod
	Conv      Conv

	// CaseShift is 0 for uppercase conversions and caseShiftMask for
	// lowercase ones; OR it into an uppercase ASCII letter to fold it to
	// lowercase, matching §4.1's case_shift table.
	CaseShift byte
}

// Upper reports whether the conversion letter was uppercase ('X', 'F',
// 'E', 'G', 'A' vs 'x', 'f', 'e', 'g', 'a').
func (s FormatSpec) Upper() bool {
	return s.CaseShift == 0
}
