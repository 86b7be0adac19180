// Package cli provides the command-line front-ends of the decimal engine:
// one-shot evaluation, CSV batch mode, and an interactive REPL.
package cli

import (
	"context"

	"github.com/apache/arrow/go/v11/arrow/decimal256"

	"github.com/agbru/deccalc/internal/decimal"
	"github.com/agbru/deccalc/internal/exec"
)

// Engine is the evaluation surface the CLI drives. *exec.Engine implements
// it; tests may substitute their own.
type Engine interface {
	// MultiplyDecimal evaluates multiplyDecimal over one batch call.
	MultiplyDecimal(ctx context.Context, args []exec.Argument) (decimal.Column[decimal256.Num], decimal.Type, error)
	// DivideDecimal evaluates divideDecimal over one batch call.
	DivideDecimal(ctx context.Context, args []exec.Argument) (decimal.Column[decimal256.Num], decimal.Type, error)
}

// Verify that the engine satisfies the CLI surface.
var _ Engine = (*exec.Engine)(nil)
