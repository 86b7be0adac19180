// Package exec exposes the batch evaluation engine for the two decimal
// functions, multiplyDecimal and divideDecimal.
//
// A call flows through three stages: the validator checks arity and argument
// categories and resolves the result type (always a 256-bit decimal at the
// caller-resolved scale); the dispatcher selects the kernel instantiation for
// the operands' native width pair from an immutable 16-entry table; the batch
// executor applies the per-row transform across one of three shapes —
// array x array, array x constant, constant x array. Rows are independent, so
// large batches may be fanned out across goroutines; a failure on any row
// aborts the whole call with no partial results.
package exec
