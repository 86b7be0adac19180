package bignum

import (
	"math/big"
	"strings"
)

// Digits is a most-significant-first sequence of base-10 digits (each 0..9)
// representing a non-negative integer.
type Digits []uint8

var (
	bigTen = big.NewInt(10)

	// maxDivisor is the largest divisor the Div kernel accepts: the maximum
	// value representable by a signed 256-bit magnitude (2^255 - 1).
	maxDivisor = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
)

// FromInt decomposes a non-negative magnitude into its decimal digits,
// most-significant-first, by repeated division by 10. Zero yields [0].
//
// The decomposition is iterative: digits are accumulated least-significant
// first and reversed once at the end.
func FromInt(x *big.Int) Digits {
	if x.Sign() == 0 {
		return Digits{0}
	}
	out := make(Digits, 0, len(x.Bits())*20)
	q := new(big.Int).Set(x)
	r := new(big.Int)
	for q.Sign() > 0 {
		q.QuoRem(q, bigTen, r)
		out = append(out, uint8(r.Int64()))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Int reassembles the digit sequence into an integer magnitude by weighted
// summation, the multiplier growing by a factor of 10 per digit from the
// least-significant end.
func (d Digits) Int() *big.Int {
	result := new(big.Int)
	multiplier := big.NewInt(1)
	term := new(big.Int)
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] != 0 {
			term.SetInt64(int64(d[i]))
			result.Add(result, term.Mul(term, multiplier))
		}
		multiplier.Mul(multiplier, bigTen)
	}
	return result
}

// String renders the sequence as a plain digit string, e.g. "56088".
func (d Digits) String() string {
	var sb strings.Builder
	sb.Grow(len(d))
	for _, digit := range d {
		sb.WriteByte('0' + digit)
	}
	return sb.String()
}

// trimLeadingZeros returns d without superfluous leading zeros, collapsing an
// all-zero (or empty) sequence to the canonical [0].
func trimLeadingZeros(d Digits) Digits {
	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}
	if len(d) == 0 {
		return Digits{0}
	}
	return d[i:]
}
