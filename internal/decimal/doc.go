// Package decimal defines the fixed-point decimal data model — native widths,
// declared types, columnar operand storage, literal parsing/formatting — and
// the per-row multiply/divide transforms built on the bignum digit kernels.
//
// A decimal operand is a signed integer magnitude of native width 32, 64, 128
// or 256 bits, interpreted at the non-negative scale fixed by its declared
// type. The 128/256-bit magnitudes are stored as arrow decimal words, the
// same layout columnar engines exchange. Results of the transforms are always
// materialized at 256-bit width and capped at MaxPrecision total digits.
package decimal
