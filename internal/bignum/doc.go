// Package bignum implements exact base-10 arithmetic over digit sequences.
//
// A Digits value is a most-significant-first sequence of base-10 digits
// representing a non-negative integer, with no superfluous leading zeros
// except the canonical single-digit zero [0]. The kernels here (schoolbook
// long multiplication and long division by a native-width divisor) operate on
// magnitudes only; sign and scale handling belong to the caller.
//
// Working directly on digit sequences instead of machine words keeps the
// arithmetic exact: no intermediate result is ever squeezed through a lossy
// representation, and the caller can bound results by digit count.
package bignum
