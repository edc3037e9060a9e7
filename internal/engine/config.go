package engine

// Config is the Go-shaped stand-in for the reference implementation's
// compile-time NANOPRINTF_* feature toggles. Each field maps to exactly
// one of those switches; a disabled feature degrades its directive to
// the same malformed/passthrough behavior the reference gets from
// compiling the feature out, rather than failing to build.
//
// A Config is small enough to pass by value; DefaultConfig enables every
// feature, matching a "full" reference build.
type Config struct {
	FieldWidth           bool // '*'/literal width parsing and padding
	Precision            bool // '.'/literal/'*' precision parsing and padding
	LargeTypes           bool // ll, j, z, t length modifiers, 64-bit arithmetic
	SmallTypes           bool // hh, h length modifiers
	Float                bool // %f %e %g and their fallbacks
	FloatSinglePrecision bool // treat float args as binary32 instead of binary64
	FloatHex             bool // %a %A
	Binary               bool // %b %B
	Writeback            bool // %n
	AltForm              bool // recognize the '#' flag at all
	SafeEmptyOnOverflow  bool // snprintf wrappers: empty string instead of truncation
}

// DefaultConfig returns a Config with every feature enabled.
func DefaultConfig() Config {
	return Config{
		FieldWidth:           true,
		Precision:            true,
		LargeTypes:           true,
		SmallTypes:           true,
		Float:                true,
		FloatSinglePrecision: false,
		FloatHex:             true,
		Binary:               true,
		Writeback:            true,
		AltForm:              true,
		SafeEmptyOnOverflow:  false,
	}
}
