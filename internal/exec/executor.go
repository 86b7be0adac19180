package exec

import (
	"context"

	"github.com/apache/arrow/go/v11/arrow/decimal256"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/deccalc/internal/decimal"
	apperrors "github.com/agbru/deccalc/internal/errors"
)

// parallelism bounds the fan-out of one batch call: at most workers
// goroutines, and none at all below threshold rows.
type parallelism struct {
	workers   int
	threshold int
}

// typedKernel binds the two native element types of a width pair to the
// batch loops. Stateless; one instance per (widthA, widthB) combination
// lives in the dispatch table.
type typedKernel[A, B decimal.Element] struct{}

// execute applies the transform across the call's shape and materializes the
// 256-bit result column.
func (k typedKernel[A, B]) execute(ctx context.Context, t decimal.Transform, p plan, par parallelism) (decimal.Column[decimal256.Num], error) {
	scaleA, scaleB := p.a.Type.Scale, p.b.Type.Scale
	resultScale := p.resultType.Scale
	out := make(decimal.Column[decimal256.Num], p.rows)

	var row func(i int) error
	switch {
	case p.a.Col != nil && p.b.Col != nil:
		colA, okA := p.a.Col.(decimal.Column[A])
		colB, okB := p.b.Col.(decimal.Column[B])
		if !okA || !okB {
			return nil, apperrors.NewTypeError(t.Name(), "illegal column representation for width pair %s/%s", p.a.Type.Width, p.b.Type.Width)
		}
		row = func(i int) error {
			return computeRow(t, colA[i], colB[i], scaleA, scaleB, resultScale, out, i)
		}

	case p.a.Col != nil:
		colA, okA := p.a.Col.(decimal.Column[A])
		constB, okB := p.b.Const.(B)
		if !okA || !okB {
			return nil, apperrors.NewTypeError(t.Name(), "illegal column representation for width pair %s/%s", p.a.Type.Width, p.b.Type.Width)
		}
		row = func(i int) error {
			return computeRow(t, colA[i], constB, scaleA, scaleB, resultScale, out, i)
		}

	default:
		constA, okA := p.a.Const.(A)
		colB, okB := p.b.Col.(decimal.Column[B])
		if !okA || !okB {
			return nil, apperrors.NewTypeError(t.Name(), "illegal column representation for width pair %s/%s", p.a.Type.Width, p.b.Type.Width)
		}
		row = func(i int) error {
			return computeRow(t, constA, colB[i], scaleA, scaleB, resultScale, out, i)
		}
	}

	if err := runRows(ctx, p.rows, par, row); err != nil {
		return nil, err
	}
	return out, nil
}

// computeRow evaluates one row and stores the materialized 256-bit element.
func computeRow[A, B decimal.Element](t decimal.Transform, a A, b B, scaleA, scaleB, resultScale uint16, out decimal.Column[decimal256.Num], i int) error {
	mag, err := t.Execute(decimal.ToBig(a), decimal.ToBig(b), scaleA, scaleB, resultScale)
	if err != nil {
		return err
	}
	num, err := decimal.Dec256FromBig(mag)
	if err != nil {
		return err
	}
	out[i] = num
	return nil
}

// runRows drives the row loop. Small batches run inline; larger ones are
// split into contiguous chunks fanned out under an errgroup, each chunk
// writing disjoint slots of the result, so evaluation order never affects
// the outcome. The first failing row cancels the remaining chunks.
func runRows(ctx context.Context, rows int, par parallelism, row func(i int) error) error {
	if par.workers <= 1 || rows < par.threshold {
		for i := 0; i < rows; i++ {
			if err := row(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(par.workers)
	chunk := (rows + par.workers - 1) / par.workers
	for start := 0; start < rows; start += chunk {
		start := start
		end := min(start+chunk, rows)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := row(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
