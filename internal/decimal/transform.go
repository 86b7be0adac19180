package decimal

import (
	"math/big"

	"github.com/agbru/deccalc/internal/bignum"
	apperrors "github.com/agbru/deccalc/internal/errors"
)

// Transform is a named, stateless per-row function computing one result
// magnitude from two operand magnitudes and their scales. Implementations
// hold no state and are safe for unsynchronized concurrent use; every buffer
// they touch is call-scoped.
type Transform interface {
	// Name returns the function name the transform implements.
	Name() string
	// Execute computes the signed result magnitude for one row, interpreted
	// by the caller at resultScale fractional digits.
	Execute(a, b *big.Int, scaleA, scaleB, resultScale uint16) (*big.Int, error)
}

// digitOp computes a result digit sequence from two absolute-value operand
// magnitudes.
type digitOp func(absA, absB *big.Int) (bignum.Digits, error)

// executeSigned factors the sign handling shared by both transforms: extract
// the product of the operand signs, run the digit computation on absolute
// values, guard the precision ceiling, and reattach the sign.
func executeSigned(a, b *big.Int, op digitOp) (*big.Int, error) {
	negative := a.Sign()*b.Sign() < 0
	digits, err := op(new(big.Int).Abs(a), new(big.Int).Abs(b))
	if err != nil {
		return nil, err
	}
	if len(digits) > MaxPrecision {
		return nil, apperrors.OverflowError{Digits: len(digits), Limit: MaxPrecision}
	}
	result := digits.Int()
	if negative {
		result.Neg(result)
	}
	return result, nil
}

// padTrailingZeros returns d extended with n trailing zero digits, shifting
// the magnitude up by n decimal places.
func padTrailingZeros(d bignum.Digits, n int) bignum.Digits {
	if n <= 0 {
		return d
	}
	out := make(bignum.Digits, len(d), len(d)+n)
	copy(out, d)
	for i := 0; i < n; i++ {
		out = append(out, 0)
	}
	return out
}

// truncateTrailing removes the last n digits of d, truncating toward zero.
// Removing every digit leaves the canonical zero.
func truncateTrailing(d bignum.Digits, n int) bignum.Digits {
	if n <= 0 {
		return d
	}
	if n >= len(d) {
		return bignum.Digits{0}
	}
	return d[:len(d)-n]
}

// MultiplyTransform implements the multiplyDecimal row function: the exact
// product of the operands, realigned from its natural scale scaleA+scaleB to
// resultScale by zero padding or truncation toward zero.
type MultiplyTransform struct{}

// Verify interface compliance.
var _ Transform = MultiplyTransform{}

// Name returns "multiplyDecimal".
func (MultiplyTransform) Name() string { return "multiplyDecimal" }

// Execute computes sign(a)*sign(b) * rescale(|a|*|b|, scaleA+scaleB → resultScale).
func (MultiplyTransform) Execute(a, b *big.Int, scaleA, scaleB, resultScale uint16) (*big.Int, error) {
	return executeSigned(a, b, func(absA, absB *big.Int) (bignum.Digits, error) {
		product := bignum.Mul(bignum.FromInt(absA), bignum.FromInt(absB))

		naturalScale := int(scaleA) + int(scaleB)
		if int(resultScale) > naturalScale {
			product = padTrailingZeros(product, int(resultScale)-naturalScale)
		} else if int(resultScale) < naturalScale {
			product = truncateTrailing(product, naturalScale-int(resultScale))
		}
		return product, nil
	})
}

// DivideTransform implements the divideDecimal row function: the exact
// quotient floor-truncated to resultScale fractional digits.
//
// The numerator is padded only when scaleB > scaleA; when scaleA > scaleB no
// compensating adjustment is made. That asymmetry is preserved from the
// reference behavior (see DESIGN.md) rather than silently corrected.
type DivideTransform struct{}

// Verify interface compliance.
var _ Transform = DivideTransform{}

// Name returns "divideDecimal".
func (DivideTransform) Name() string { return "divideDecimal" }

// Execute computes sign(a)*sign(b) * (padded |a| digits) / |b|. A zero
// divisor magnitude is an error, never a silent infinity.
func (d DivideTransform) Execute(a, b *big.Int, scaleA, scaleB, resultScale uint16) (*big.Int, error) {
	return executeSigned(a, b, func(absA, absB *big.Int) (bignum.Digits, error) {
		if absB.Sign() == 0 {
			return nil, apperrors.DivisionByZeroError{Function: d.Name()}
		}

		numerator := bignum.FromInt(absA)
		if scaleB > scaleA {
			numerator = padTrailingZeros(numerator, int(scaleB)-int(scaleA))
		}
		numerator = padTrailingZeros(numerator, int(resultScale))

		return bignum.Div(numerator, absB)
	})
}
