package exec

import (
	"context"
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/agbru/deccalc/internal/decimal"
	apperrors "github.com/agbru/deccalc/internal/errors"
)

// mkColumn builds a column of the given width from int64 magnitudes.
func mkColumn(t *testing.T, w decimal.Width, scale uint16, rows ...int64) Argument {
	t.Helper()
	mags := make([]*big.Int, len(rows))
	for i, r := range rows {
		mags[i] = big.NewInt(r)
	}
	col, err := decimal.ColumnFromBig(w, mags)
	if err != nil {
		t.Fatalf("ColumnFromBig(%s) failed: %v", w, err)
	}
	return ColumnArg(decimal.Type{Width: w, Scale: scale}, col)
}

// mkConst builds a broadcast constant of the given width from an int64
// magnitude.
func mkConst(t *testing.T, w decimal.Width, scale uint16, mag int64) Argument {
	t.Helper()
	v, err := decimal.ElementFromBig(w, big.NewInt(mag))
	if err != nil {
		t.Fatalf("ElementFromBig(%s) failed: %v", w, err)
	}
	return ConstArg(decimal.Type{Width: w, Scale: scale}, v)
}

func TestEngineMultiply(t *testing.T) {
	eng := New()
	col, typ, err := eng.MultiplyDecimal(context.Background(),
		[]Argument{mkColumn(t, decimal.Width32, 2, 123), mkColumn(t, decimal.Width32, 2, 456)})
	if err != nil {
		t.Fatalf("MultiplyDecimal failed: %v", err)
	}
	if typ.Width != decimal.Width256 || typ.Scale != 2 {
		t.Errorf("result type = %s, want Decimal256(2)", typ)
	}
	// 1.23 * 4.56 = 5.6088, truncated to scale 2.
	if got := col[0].BigInt(); got.Cmp(big.NewInt(560)) != 0 {
		t.Errorf("result magnitude = %s, want 560", got)
	}
}

func TestEngineDivide(t *testing.T) {
	eng := New()
	col, typ, err := eng.DivideDecimal(context.Background(),
		[]Argument{mkColumn(t, decimal.Width32, 0, 100), mkColumn(t, decimal.Width32, 0, 4), ScaleArg(2)})
	if err != nil {
		t.Fatalf("DivideDecimal failed: %v", err)
	}
	if typ.Scale != 2 {
		t.Errorf("result scale = %d, want 2", typ.Scale)
	}
	if got := col[0].BigInt(); got.Cmp(big.NewInt(2500)) != 0 {
		t.Errorf("result magnitude = %s, want 2500", got)
	}
}

// TestEngineShapesAgree verifies that broadcasting a constant over either side
// matches the fully materialized array/array evaluation row for row.
func TestEngineShapesAgree(t *testing.T) {
	eng := New()
	ctx := context.Background()

	rows := []int64{15, -7, 0, 123456, -99999}
	constMag := int64(25)

	broadcast := make([]int64, len(rows))
	for i := range broadcast {
		broadcast[i] = constMag
	}

	arrArr, _, err := eng.MultiplyDecimal(ctx, []Argument{
		mkColumn(t, decimal.Width64, 2, rows...),
		mkColumn(t, decimal.Width64, 1, broadcast...),
	})
	if err != nil {
		t.Fatalf("array/array failed: %v", err)
	}
	arrConst, _, err := eng.MultiplyDecimal(ctx, []Argument{
		mkColumn(t, decimal.Width64, 2, rows...),
		mkConst(t, decimal.Width64, 1, constMag),
	})
	if err != nil {
		t.Fatalf("array/constant failed: %v", err)
	}
	constArr, _, err := eng.MultiplyDecimal(ctx, []Argument{
		mkConst(t, decimal.Width64, 1, constMag),
		mkColumn(t, decimal.Width64, 2, rows...),
	})
	if err != nil {
		t.Fatalf("constant/array failed: %v", err)
	}

	for i := range rows {
		a := arrArr[i].BigInt()
		if b := arrConst[i].BigInt(); a.Cmp(b) != 0 {
			t.Errorf("row %d: array/constant %s != array/array %s", i, b, a)
		}
		if c := constArr[i].BigInt(); a.Cmp(c) != 0 {
			t.Errorf("row %d: constant/array %s != array/array %s", i, c, a)
		}
	}
}

// TestEngineAllWidthPairs drives one multiplication through each of the 16
// operand width combinations and expects the identical result from every
// kernel.
func TestEngineAllWidthPairs(t *testing.T) {
	eng := New()
	ctx := context.Background()

	for _, wa := range decimal.Widths {
		for _, wb := range decimal.Widths {
			t.Run(wa.String()+"x"+wb.String(), func(t *testing.T) {
				col, typ, err := eng.MultiplyDecimal(ctx, []Argument{
					mkColumn(t, wa, 1, 12),
					mkColumn(t, wb, 1, 34),
				})
				if err != nil {
					t.Fatalf("MultiplyDecimal failed: %v", err)
				}
				// 1.2 * 3.4 = 4.08, truncated to the default scale 1.
				if got := col[0].BigInt(); got.Cmp(big.NewInt(40)) != 0 {
					t.Errorf("result magnitude = %s, want 40", got)
				}
				if typ != decimal.ResultType(1) {
					t.Errorf("result type = %s, want %s", typ, decimal.ResultType(1))
				}
			})
		}
	}
}

// TestEngineOverflowAbortsBatch verifies all-or-nothing batch semantics: one
// overflowing row fails the whole call and no partial column escapes.
func TestEngineOverflowAbortsBatch(t *testing.T) {
	eng := New()

	big40 := new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil)
	colMags := []*big.Int{big.NewInt(1), big40}
	col, err := decimal.ColumnFromBig(decimal.Width256, colMags)
	if err != nil {
		t.Fatalf("ColumnFromBig failed: %v", err)
	}
	constV, err := decimal.ElementFromBig(decimal.Width256, big40)
	if err != nil {
		t.Fatalf("ElementFromBig failed: %v", err)
	}

	result, _, err := eng.MultiplyDecimal(context.Background(), []Argument{
		ColumnArg(decimal.Type{Width: decimal.Width256}, col),
		ConstArg(decimal.Type{Width: decimal.Width256}, constV),
	})
	var calcErr apperrors.CalculationError
	if !errors.As(err, &calcErr) {
		t.Fatalf("error = %v, want CalculationError", err)
	}
	var overflow apperrors.OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("error = %v, want a wrapped OverflowError", err)
	}
	if result != nil {
		t.Errorf("failed call returned %d rows, want none", len(result))
	}
}

// TestEngineDivisionByZeroAbortsBatch verifies that a single zero divisor row
// fails the whole divide call.
func TestEngineDivisionByZeroAbortsBatch(t *testing.T) {
	eng := New()
	_, _, err := eng.DivideDecimal(context.Background(), []Argument{
		mkColumn(t, decimal.Width32, 0, 10, 20),
		mkColumn(t, decimal.Width32, 0, 2, 0),
	})
	var divZero apperrors.DivisionByZeroError
	if !errors.As(err, &divZero) {
		t.Fatalf("error = %v, want DivisionByZeroError", err)
	}
}

// TestParallelMatchesSequential verifies that fanned-out evaluation produces
// exactly the column a single-goroutine run produces.
func TestParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := make([]int64, 500)
	factors := make([]int64, len(rows))
	for i := range rows {
		rows[i] = rng.Int63n(1_000_000_000) - 500_000_000
		factors[i] = rng.Int63n(1_000_000) + 1
	}

	sequential := New(WithWorkers(1))
	parallel := New(WithWorkers(4), WithParallelThreshold(1))

	args := func() []Argument {
		return []Argument{
			mkColumn(t, decimal.Width64, 3, rows...),
			mkColumn(t, decimal.Width64, 2, factors...),
			ScaleArg(4),
		}
	}

	want, _, err := sequential.MultiplyDecimal(context.Background(), args())
	if err != nil {
		t.Fatalf("sequential run failed: %v", err)
	}
	got, _, err := parallel.MultiplyDecimal(context.Background(), args())
	if err != nil {
		t.Fatalf("parallel run failed: %v", err)
	}

	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("row %d: parallel %s != sequential %s", i, got[i].BigInt(), want[i].BigInt())
		}
	}
}

// TestEngineCanceledContext verifies that a canceled context aborts a parallel
// batch with the context error.
func TestEngineCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := New(WithWorkers(2), WithParallelThreshold(1))
	_, _, err := eng.MultiplyDecimal(ctx, []Argument{
		mkColumn(t, decimal.Width64, 0, 1, 2, 3, 4, 5, 6, 7, 8),
		mkColumn(t, decimal.Width64, 0, 1, 2, 3, 4, 5, 6, 7, 8),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
