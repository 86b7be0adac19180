package decimal

import "fmt"

// MaxPrecision is the hard ceiling on the total number of decimal digits any
// result magnitude may carry. A computed result needing more digits fails the
// whole call with an overflow error.
const MaxPrecision = 76

// Width is the bit size of the native integer backing a decimal magnitude.
type Width uint16

// The four supported native widths.
const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
	Width256 Width = 256
)

// Widths lists the supported widths in ascending order.
var Widths = []Width{Width32, Width64, Width128, Width256}

// MaxDigits returns the largest decimal precision a magnitude of this width
// can hold: 9, 18, 38 and 76 digits respectively.
func (w Width) MaxDigits() int {
	switch w {
	case Width32:
		return 9
	case Width64:
		return 18
	case Width128:
		return 38
	case Width256:
		return 76
	}
	return 0
}

// Valid reports whether w is one of the four supported widths.
func (w Width) Valid() bool {
	return w == Width32 || w == Width64 || w == Width128 || w == Width256
}

// String renders the width as the decimal type family name, e.g. "Decimal64".
func (w Width) String() string {
	return fmt.Sprintf("Decimal%d", uint16(w))
}

// Type is the declared type of a decimal operand or result: a native storage
// width plus the number of fractional digits its magnitudes implicitly carry.
type Type struct {
	Width Width
	Scale uint16
}

// Precision returns the digit capacity of the type's width.
func (t Type) Precision() int { return t.Width.MaxDigits() }

// String renders the type as e.g. "Decimal64(2)".
func (t Type) String() string {
	return fmt.Sprintf("%s(%d)", t.Width, t.Scale)
}

// ResultType returns the declared type of every multiply/divide result: a
// 256-bit decimal with precision MaxPrecision at the given scale, regardless
// of the input widths. Fixing the result width collapses overflow reasoning
// to a single digit-count check per call.
func ResultType(scale uint16) Type {
	return Type{Width: Width256, Scale: scale}
}
