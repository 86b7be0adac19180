package bignum

// Mul computes the product of two digit sequences using schoolbook long
// multiplication with digit-wise carry propagation: O(n*m) digit operations.
// An empty operand yields [0]; leading zeros are stripped from the result.
//
// Both operands are magnitudes; the caller owns sign handling. Operand
// lengths up to the 76-digit precision ceiling are supported (any lengths
// work, the bound matters only to callers enforcing precision).
func Mul(a, b Digits) Digits {
	if len(a) == 0 || len(b) == 0 {
		return Digits{0}
	}

	// Least-significant-first accumulator; cell k holds the coefficient of
	// 10^k and stays below 10 after each inner pass.
	acc := make([]int, len(a)+len(b))

	shiftA := 0
	for i := len(a) - 1; i >= 0; i-- {
		carry := 0
		da := int(a[i])
		shiftB := 0
		for j := len(b) - 1; j >= 0; j-- {
			sum := da*int(b[j]) + acc[shiftA+shiftB] + carry
			carry = sum / 10
			acc[shiftA+shiftB] = sum % 10
			shiftB++
		}
		if carry > 0 {
			acc[shiftA+shiftB] += carry
		}
		shiftA++
	}

	// Drop leading zeros (the high end of the lsb-first accumulator).
	top := len(acc) - 1
	for top >= 0 && acc[top] == 0 {
		top--
	}
	if top < 0 {
		return Digits{0}
	}

	out := make(Digits, 0, top+1)
	for ; top >= 0; top-- {
		out = append(out, uint8(acc[top]))
	}
	return out
}
