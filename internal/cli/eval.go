package cli

import (
	"context"
	"io"
	"time"

	"github.com/apache/arrow/go/v11/arrow/decimal256"

	"github.com/agbru/deccalc/internal/config"
	"github.com/agbru/deccalc/internal/decimal"
	apperrors "github.com/agbru/deccalc/internal/errors"
	"github.com/agbru/deccalc/internal/exec"
)

// RunEval evaluates the single expression supplied via flags and prints the
// result.
func RunEval(ctx context.Context, eng Engine, cfg config.AppConfig, out, errW io.Writer) int {
	start := time.Now()
	result, typ, err := EvaluateScalar(ctx, eng, cfg.Op, cfg.A, cfg.B, cfg.ResultScale)
	if err != nil {
		PresentError(errW, err)
		return apperrors.ExitCodeFor(err)
	}
	PresentResult(out, cfg.Op, cfg.A, cfg.B, result, typ, time.Since(start), cfg.Quiet)
	return apperrors.ExitSuccess
}

// EvaluateScalar parses two decimal literals, runs them through the engine as
// a one-row batch, and formats the result at the resolved scale.
// resultScale may be config.OmitResultScale to use the engine default.
func EvaluateScalar(ctx context.Context, eng Engine, op, aLit, bLit string, resultScale int) (string, decimal.Type, error) {
	args, err := scalarArguments(aLit, bLit, resultScale)
	if err != nil {
		return "", decimal.Type{}, err
	}

	var (
		col decimal.Column[decimal256.Num]
		typ decimal.Type
	)
	switch op {
	case config.OpDivide:
		col, typ, err = eng.DivideDecimal(ctx, args)
	default:
		col, typ, err = eng.MultiplyDecimal(ctx, args)
	}
	if err != nil {
		return "", decimal.Type{}, err
	}
	return decimal.Format(col[0].BigInt(), typ.Scale), typ, nil
}

// scalarArguments turns two literals into one-row column arguments, plus the
// optional scale argument.
func scalarArguments(aLit, bLit string, resultScale int) ([]exec.Argument, error) {
	va, err := decimal.Parse(aLit)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid first operand: %v", err)
	}
	vb, err := decimal.Parse(bLit)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid second operand: %v", err)
	}

	colA, typA, err := decimal.BuildColumn([]decimal.Value{va})
	if err != nil {
		return nil, apperrors.NewConfigError("invalid first operand: %v", err)
	}
	colB, typB, err := decimal.BuildColumn([]decimal.Value{vb})
	if err != nil {
		return nil, apperrors.NewConfigError("invalid second operand: %v", err)
	}

	args := []exec.Argument{exec.ColumnArg(typA, colA), exec.ColumnArg(typB, colB)}
	if resultScale != config.OmitResultScale {
		args = append(args, exec.ScaleArg(uint64(resultScale)))
	}
	return args, nil
}
