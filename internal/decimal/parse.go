package decimal

import (
	"fmt"
	"math/big"
	"strings"
)

// Value is a scalar decimal: a signed magnitude with its declared type.
type Value struct {
	Mag  *big.Int
	Type Type
}

// Parse converts a decimal literal such as "-1.23" into a Value. The scale is
// the number of fractional digits written; the width is the narrowest native
// width whose digit capacity holds the magnitude. Literals with more than
// MaxPrecision significant digits are rejected.
func Parse(s string) (Value, error) {
	lit := strings.TrimSpace(s)
	if lit == "" {
		return Value{}, fmt.Errorf("empty decimal literal")
	}

	neg := false
	switch lit[0] {
	case '-':
		neg = true
		lit = lit[1:]
	case '+':
		lit = lit[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(lit, ".")
	if intPart == "" && fracPart == "" {
		return Value{}, fmt.Errorf("invalid decimal literal %q", s)
	}
	if hasDot && fracPart == "" {
		return Value{}, fmt.Errorf("invalid decimal literal %q: trailing point", s)
	}
	for _, part := range []string{intPart, fracPart} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return Value{}, fmt.Errorf("invalid decimal literal %q", s)
			}
		}
	}

	mag, ok := new(big.Int).SetString(strings.TrimLeft(intPart+fracPart, "0"), 10)
	if !ok {
		mag = new(big.Int)
	}
	if neg {
		mag.Neg(mag)
	}

	digits := magDigits(mag)
	if digits > MaxPrecision {
		return Value{}, fmt.Errorf("decimal literal %q has %d digits, maximum is %d", s, digits, MaxPrecision)
	}

	return Value{
		Mag:  mag,
		Type: Type{Width: narrowestWidth(digits), Scale: uint16(len(fracPart))},
	}, nil
}

// Format renders a signed magnitude at the given scale as a canonical decimal
// string, e.g. Format(-56088, 4) == "-5.6088".
func Format(mag *big.Int, scale uint16) string {
	abs := new(big.Int).Abs(mag).String()
	var sb strings.Builder
	if mag.Sign() < 0 {
		sb.WriteByte('-')
	}
	if scale == 0 {
		sb.WriteString(abs)
		return sb.String()
	}
	if pad := int(scale) + 1 - len(abs); pad > 0 {
		abs = strings.Repeat("0", pad) + abs
	}
	point := len(abs) - int(scale)
	sb.WriteString(abs[:point])
	sb.WriteByte('.')
	sb.WriteString(abs[point:])
	return sb.String()
}

// magDigits returns the number of decimal digits of |x|; zero counts as one
// digit.
func magDigits(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(x).String())
}

// narrowestWidth returns the narrowest native width whose digit capacity
// holds a magnitude of the given digit count.
func narrowestWidth(digits int) Width {
	for _, w := range Widths {
		if digits <= w.MaxDigits() {
			return w
		}
	}
	return Width256
}

// BuildColumn assembles parsed scalar values into one columnar operand. All
// rows of a column share one declared type, so magnitudes are realigned to
// the largest scale seen (trailing zero padding, always exact) and stored at
// the narrowest width that fits every realigned magnitude.
func BuildColumn(values []Value) (AnyColumn, Type, error) {
	if len(values) == 0 {
		return nil, Type{}, fmt.Errorf("cannot build a column from zero values")
	}

	var scale uint16
	for _, v := range values {
		if v.Type.Scale > scale {
			scale = v.Type.Scale
		}
	}

	mags := make([]*big.Int, len(values))
	maxDigits := 1
	for i, v := range values {
		mag := new(big.Int).Set(v.Mag)
		if shift := int(scale) - int(v.Type.Scale); shift > 0 {
			mag.Mul(mag, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil))
		}
		if d := magDigits(mag); d > maxDigits {
			maxDigits = d
		}
		mags[i] = mag
	}
	if maxDigits > MaxPrecision {
		return nil, Type{}, fmt.Errorf("column requires %d digits, maximum is %d", maxDigits, MaxPrecision)
	}

	typ := Type{Width: narrowestWidth(maxDigits), Scale: scale}
	col, err := ColumnFromBig(typ.Width, mags)
	if err != nil {
		return nil, Type{}, err
	}
	return col, typ, nil
}
