package exec

import (
	"context"

	"github.com/apache/arrow/go/v11/arrow/decimal128"
	"github.com/apache/arrow/go/v11/arrow/decimal256"

	"github.com/agbru/deccalc/internal/decimal"
)

// widthPair keys the dispatch table on the declared operand widths.
type widthPair struct {
	a, b decimal.Width
}

// kernel is one specialized (widthA, widthB) batch executor instantiation.
type kernel interface {
	execute(ctx context.Context, t decimal.Transform, p plan, par parallelism) (decimal.Column[decimal256.Num], error)
}

// kernels is the full 16-entry combination matrix, built once as immutable
// process-wide state. The validator rejects anything that would miss.
var kernels = buildKernels()

func buildKernels() map[widthPair]kernel {
	m := make(map[widthPair]kernel, 16)
	registerPairs[int32](m)
	registerPairs[int64](m)
	registerPairs[decimal128.Num](m)
	registerPairs[decimal256.Num](m)
	return m
}

// registerPairs adds the four kernels pairing element type A with every
// supported second-operand element type.
func registerPairs[A decimal.Element](m map[widthPair]kernel) {
	registerPair[A, int32](m)
	registerPair[A, int64](m)
	registerPair[A, decimal128.Num](m)
	registerPair[A, decimal256.Num](m)
}

func registerPair[A, B decimal.Element](m map[widthPair]kernel) {
	m[widthPair{decimal.WidthOf[A](), decimal.WidthOf[B]()}] = typedKernel[A, B]{}
}
