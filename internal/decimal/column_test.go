package decimal

import (
	"math/big"
	"strings"
	"testing"

	"github.com/apache/arrow/go/v11/arrow/decimal128"
	"github.com/apache/arrow/go/v11/arrow/decimal256"
)

func TestWidthOf(t *testing.T) {
	if w := WidthOf[int32](); w != Width32 {
		t.Errorf("WidthOf[int32] = %s", w)
	}
	if w := WidthOf[int64](); w != Width64 {
		t.Errorf("WidthOf[int64] = %s", w)
	}
	if w := WidthOf[decimal128.Num](); w != Width128 {
		t.Errorf("WidthOf[decimal128.Num] = %s", w)
	}
	if w := WidthOf[decimal256.Num](); w != Width256 {
		t.Errorf("WidthOf[decimal256.Num] = %s", w)
	}
}

func TestElementWidth(t *testing.T) {
	tests := []struct {
		name  string
		v     any
		want  Width
		valid bool
	}{
		{"int32", int32(5), Width32, true},
		{"int64", int64(5), Width64, true},
		{"decimal128", decimal128.Num{}, Width128, true},
		{"decimal256", decimal256.Num{}, Width256, true},
		{"plain int rejected", int(5), 0, false},
		{"string rejected", "5", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, ok := ElementWidth(tc.v)
			if ok != tc.valid || w != tc.want {
				t.Errorf("ElementWidth(%T) = (%v, %v), want (%v, %v)", tc.v, w, ok, tc.want, tc.valid)
			}
		})
	}
}

// TestElementBigRoundTrip verifies that magnitudes survive conversion to each
// native element type and back, including negatives and values past 64 bits.
func TestElementBigRoundTrip(t *testing.T) {
	wide, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	tests := []struct {
		name  string
		width Width
		mag   *big.Int
	}{
		{"int32 positive", Width32, big.NewInt(2147483647)},
		{"int32 negative", Width32, big.NewInt(-2147483648)},
		{"int64", Width64, big.NewInt(-9000000000000000000)},
		{"decimal128 wide", Width128, wide},
		{"decimal256 wide", Width256, wide},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ElementFromBig(tc.width, tc.mag)
			if err != nil {
				t.Fatalf("ElementFromBig failed: %v", err)
			}
			var back *big.Int
			switch x := v.(type) {
			case int32:
				back = ToBig(x)
			case int64:
				back = ToBig(x)
			case decimal128.Num:
				back = ToBig(x)
			case decimal256.Num:
				back = ToBig(x)
			}
			if back.Cmp(tc.mag) != 0 {
				t.Errorf("round trip of %s via %s produced %s", tc.mag, tc.width, back)
			}
		})
	}
}

// TestElementFromBigRangeChecks verifies that an out-of-range magnitude comes
// back as an error from every width, never as a panic out of the arrow
// conversions.
func TestElementFromBigRangeChecks(t *testing.T) {
	wide, _ := new(big.Int).SetString("99999999999999999999", 10)
	tests := []struct {
		name  string
		width Width
		mag   *big.Int
	}{
		{"2^31 exceeds Width32", Width32, big.NewInt(1 << 31)},
		{"20 digits exceed Width64", Width64, wide},
		{"2^127 exceeds Width128", Width128, new(big.Int).Lsh(big.NewInt(1), 127)},
		{"negative 2^127 exceeds Width128", Width128, new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))},
		{"2^255 exceeds Width256", Width256, new(big.Int).Lsh(big.NewInt(1), 255)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ElementFromBig(tc.width, tc.mag); err == nil {
				t.Errorf("ElementFromBig(%s, %s) succeeded, want range error", tc.width, tc.mag)
			}
		})
	}
}

func TestDec256FromBig(t *testing.T) {
	t.Run("maximum precision magnitude fits", func(t *testing.T) {
		max76, _ := new(big.Int).SetString(strings.Repeat("9", 76), 10)
		n, err := Dec256FromBig(max76)
		if err != nil {
			t.Fatalf("Dec256FromBig failed: %v", err)
		}
		if n.BigInt().Cmp(max76) != 0 {
			t.Errorf("round trip produced %s", n.BigInt())
		}
	})

	t.Run("wider than 256 bits is an error", func(t *testing.T) {
		if _, err := Dec256FromBig(new(big.Int).Lsh(big.NewInt(1), 255)); err == nil {
			t.Error("2^255 succeeded, want range error")
		}
	})
}

func TestBuildColumn(t *testing.T) {
	parse := func(lits ...string) []Value {
		vals := make([]Value, len(lits))
		for i, lit := range lits {
			v, err := Parse(lit)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", lit, err)
			}
			vals[i] = v
		}
		return vals
	}

	t.Run("aligns scales by zero padding", func(t *testing.T) {
		col, typ, err := BuildColumn(parse("1.5", "2.25", "3"))
		if err != nil {
			t.Fatalf("BuildColumn failed: %v", err)
		}
		if typ.Scale != 2 || typ.Width != Width32 {
			t.Fatalf("type = %s, want Decimal32(2)", typ)
		}
		c, ok := col.(Column[int32])
		if !ok {
			t.Fatalf("column is %T, want Column[int32]", col)
		}
		for i, want := range []int32{150, 225, 300} {
			if c[i] != want {
				t.Errorf("row %d = %d, want %d", i, c[i], want)
			}
		}
	})

	t.Run("width follows the realigned magnitudes", func(t *testing.T) {
		// 999999999 fits 32 bits at scale 0 but needs ten digits once the
		// column scale is pushed to 1 by the other row.
		_, typ, err := BuildColumn(parse("999999999", "0.5"))
		if err != nil {
			t.Fatalf("BuildColumn failed: %v", err)
		}
		if typ.Width != Width64 || typ.Scale != 1 {
			t.Errorf("type = %s, want Decimal64(1)", typ)
		}
	})

	t.Run("empty input rejected", func(t *testing.T) {
		if _, _, err := BuildColumn(nil); err == nil {
			t.Error("BuildColumn(nil) succeeded, want error")
		}
	})
}

func TestColumnLen(t *testing.T) {
	col := Column[int64]{1, 2, 3}
	if col.Len() != 3 || col.Width() != Width64 {
		t.Errorf("Len/Width = %d/%s, want 3/%s", col.Len(), col.Width(), Width64)
	}
}
