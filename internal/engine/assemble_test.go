package engine

import "testing"

func collect(f func(Sink) int) (string, int) {
	var out []byte
	n := f(SinkFunc(func(c byte) { out = append(out, c) }))
	return string(out), n
}

func TestAssembleNumericOrdering(t *testing.T) {
	cases := []struct {
		name         string
		spec         FormatSpec
		width        int
		sign         byte
		prefix       string
		digits       string
		precisionMin int
		want         string
	}{
		{
			name:   "plus sign with zero pad",
			spec:   FormatSpec{ZeroPad: true},
			width:  5,
			sign:   '+',
			digits: "42",
			want:   "+0042",
		},
		{
			name:   "left justify pads with spaces",
			spec:   FormatSpec{LeftJustify: true},
			width:  6,
			digits: "42",
			want:   "42    ",
		},
		{
			name:   "default right justify with spaces",
			spec:   FormatSpec{},
			width:  6,
			digits: "42",
			want:   "    42",
		},
		{
			name:   "alt-form prefix with zero pad",
			spec:   FormatSpec{ZeroPad: true},
			width:  8,
			prefix: "0x",
			digits: "abcd",
			want:   "0x00abcd",
		},
		{
			name:         "precision forces minimum digits",
			spec:         FormatSpec{},
			width:        0,
			digits:       "5",
			precisionMin: 4,
			want:         "0005",
		},
		{
			name:  "width never truncates content",
			spec:  FormatSpec{},
			width: 1,
			sign:  '-',
			digits: "123456",
			want:   "-123456",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, n := collect(func(p Sink) int {
				return AssembleNumeric(p, c.spec, c.width, c.sign, c.prefix, []byte(c.digits), c.precisionMin)
			})
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
			if n != len(got) {
				t.Errorf("returned count %d != len(output) %d", n, len(got))
			}
		})
	}
}

func TestAssembleNumericPrecisionSuppressesNoZeroPad(t *testing.T) {
	// normalizeSpec already clears ZeroPad when a precision was parsed on
	// an integral conversion; AssembleNumeric trusts that and just follows
	// spec.ZeroPad, so this exercises the space-pad path with a digit
	// floor active at the same time.
	spec := FormatSpec{}
	got, _ := collect(func(p Sink) int {
		return AssembleNumeric(p, spec, 6, 0, "", []byte("7"), 3)
	})
	if got != "   007" {
		t.Errorf("got %q, want %q", got, "   007")
	}
}

func TestAssembleString(t *testing.T) {
	cases := []struct {
		name  string
		spec  FormatSpec
		width int
		s     string
		want  string
	}{
		{"no width", FormatSpec{}, 0, "hi", "hi"},
		{"right justify", FormatSpec{}, 10, "hi", "        hi"},
		{"left justify", FormatSpec{LeftJustify: true}, 10, "hi", "hi        "},
		{
			"precision clamps length",
			FormatSpec{PrecisionKind: PrecisionLiteral, Precision: 3},
			0, "hello", "hel",
		},
		{
			"precision longer than string is a no-op",
			FormatSpec{PrecisionKind: PrecisionLiteral, Precision: 10},
			0, "hi", "hi",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, n := collect(func(p Sink) int {
				return AssembleString(p, c.spec, c.width, c.s)
			})
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
			if n != len(got) {
				t.Errorf("returned count %d != len(output) %d", n, len(got))
			}
		})
	}
}

func TestAssembleChar(t *testing.T) {
	cases := []struct {
		name  string
		spec  FormatSpec
		width int
		c     byte
		want  string
	}{
		{"no width", FormatSpec{}, 0, 'x', "x"},
		{"right justify", FormatSpec{}, 4, 'x', "   x"},
		{"left justify", FormatSpec{LeftJustify: true}, 4, 'x', "x   "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, n := collect(func(p Sink) int {
				return AssembleChar(p, c.spec, c.width, c.c)
			})
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
			if n != len(got) {
				t.Errorf("returned count %d != len(output) %d", n, len(got))
			}
		})
	}
}
