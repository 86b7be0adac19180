package decimal

import (
	"fmt"
	"math/big"

	"github.com/apache/arrow/go/v11/arrow/decimal128"
	"github.com/apache/arrow/go/v11/arrow/decimal256"
)

// Element is the set of native magnitude representations backing decimal
// columns: machine integers for the 32/64-bit widths and arrow two's
// complement words for the 128/256-bit widths.
type Element interface {
	int32 | int64 | decimal128.Num | decimal256.Num
}

// AnyColumn is the width-erased view of a column, used where operands of
// different native widths travel together.
type AnyColumn interface {
	// Len returns the number of rows.
	Len() int
	// Width returns the native width of the column's elements.
	Width() Width
}

// Column is a contiguous array of native-width decimal magnitudes. The scale
// they are interpreted at lives in the accompanying Type, not in the column.
type Column[T Element] []T

// Len returns the number of rows.
func (c Column[T]) Len() int { return len(c) }

// Width returns the native width of the column's elements.
func (c Column[T]) Width() Width { return WidthOf[T]() }

// WidthOf returns the native width corresponding to an element type.
func WidthOf[T Element]() Width {
	var zero T
	switch any(zero).(type) {
	case int32:
		return Width32
	case int64:
		return Width64
	case decimal128.Num:
		return Width128
	default:
		return Width256
	}
}

// ElementWidth reports the native width of a width-erased element value and
// whether it is one of the supported element types.
func ElementWidth(v any) (Width, bool) {
	switch v.(type) {
	case int32:
		return Width32, true
	case int64:
		return Width64, true
	case decimal128.Num:
		return Width128, true
	case decimal256.Num:
		return Width256, true
	}
	return 0, false
}

// ToBig converts a native magnitude to a signed big integer.
func ToBig[T Element](v T) *big.Int {
	switch x := any(v).(type) {
	case int32:
		return big.NewInt(int64(x))
	case int64:
		return big.NewInt(x)
	case decimal128.Num:
		return x.BigInt()
	case decimal256.Num:
		return x.BigInt()
	}
	return nil
}

// Dec256FromBig materializes a signed magnitude as a 256-bit result element.
// Magnitudes that passed the precision guard always fit: 10^76-1 needs 253
// bits. The width check stays explicit because decimal256.FromBigInt panics
// on wider values instead of reporting them.
func Dec256FromBig(x *big.Int) (decimal256.Num, error) {
	if x.BitLen() > 255 {
		return decimal256.Num{}, fmt.Errorf("result magnitude %s exceeds 256 bits", x)
	}
	return decimal256.FromBigInt(x), nil
}

// ElementFromBig converts a signed magnitude to the native element for the
// given width, reported as the erased any. It fails if the magnitude does not
// fit the width.
func ElementFromBig(w Width, x *big.Int) (any, error) {
	switch w {
	case Width32:
		if !x.IsInt64() || x.Int64() > 1<<31-1 || x.Int64() < -(1<<31) {
			return nil, fmt.Errorf("magnitude %s does not fit %s", x, w)
		}
		return int32(x.Int64()), nil
	case Width64:
		if !x.IsInt64() {
			return nil, fmt.Errorf("magnitude %s does not fit %s", x, w)
		}
		return x.Int64(), nil
	case Width128:
		if x.BitLen() > 127 {
			return nil, fmt.Errorf("magnitude %s does not fit %s", x, w)
		}
		return decimal128.FromBigInt(x), nil
	case Width256:
		if x.BitLen() > 255 {
			return nil, fmt.Errorf("magnitude %s does not fit %s", x, w)
		}
		return decimal256.FromBigInt(x), nil
	}
	return nil, fmt.Errorf("unsupported width %d", w)
}

// ColumnFromBig builds a column of the given width from signed magnitudes.
func ColumnFromBig(w Width, mags []*big.Int) (AnyColumn, error) {
	switch w {
	case Width32:
		return appendColumn[int32](w, mags)
	case Width64:
		return appendColumn[int64](w, mags)
	case Width128:
		return appendColumn[decimal128.Num](w, mags)
	case Width256:
		return appendColumn[decimal256.Num](w, mags)
	}
	return nil, fmt.Errorf("unsupported width %d", w)
}

func appendColumn[T Element](w Width, mags []*big.Int) (Column[T], error) {
	col := make(Column[T], 0, len(mags))
	for i, m := range mags {
		v, err := ElementFromBig(w, m)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		col = append(col, v.(T))
	}
	return col, nil
}
