package bignum

import (
	"errors"
	"math/big"
)

var (
	// ErrNonPositiveDivisor is returned by Div for a nil, zero, or negative
	// divisor.
	ErrNonPositiveDivisor = errors.New("bignum: divisor must be positive")

	// ErrDivisorTooWide is returned by Div for a divisor that does not fit a
	// signed 256-bit magnitude.
	ErrDivisorTooWide = errors.New("bignum: divisor exceeds 256-bit range")
)

// Div performs long division of a digit sequence by a positive divisor of at
// most 256 bits, emitting quotient digits most-significant-first.
//
// The running remainder is seeded from the leading numerator digits until it
// first reaches the divisor, so the quotient carries no leading zeros; from
// then on each step emits remainder/divisor and continues with
// (remainder%divisor)*10 + nextDigit. A numerator smaller than the divisor
// yields [0]. The remainder stays below 10*divisor throughout, so every
// intermediate value is bounded by the divisor width check performed up
// front.
func Div(num Digits, divisor *big.Int) (Digits, error) {
	if divisor == nil || divisor.Sign() <= 0 {
		return nil, ErrNonPositiveDivisor
	}
	if divisor.Cmp(maxDivisor) > 0 {
		return nil, ErrDivisorTooWide
	}

	rem := new(big.Int)
	next := new(big.Int)
	digit := new(big.Int)
	quo := make(Digits, 0, len(num))
	q := new(big.Int)

	for _, d := range num {
		rem.Mul(rem, bigTen)
		rem.Add(rem, digit.SetInt64(int64(d)))
		if len(quo) == 0 && rem.Cmp(divisor) < 0 {
			continue
		}
		q.QuoRem(rem, divisor, next)
		rem, next = next, rem
		quo = append(quo, uint8(q.Int64()))
	}

	if len(quo) == 0 {
		return Digits{0}, nil
	}
	return quo, nil
}
