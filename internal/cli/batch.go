package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apache/arrow/go/v11/arrow/decimal256"

	"github.com/agbru/deccalc/internal/config"
	"github.com/agbru/deccalc/internal/decimal"
	apperrors "github.com/agbru/deccalc/internal/errors"
	"github.com/agbru/deccalc/internal/exec"
	"github.com/agbru/deccalc/internal/metrics"
	"github.com/agbru/deccalc/internal/sysmon"
	"github.com/agbru/deccalc/internal/ui"
)

// RunBatch evaluates a CSV file of "a,b" rows as one columnar batch call and
// writes one "a,b,result" row per input row.
func RunBatch(ctx context.Context, eng Engine, cfg config.AppConfig, out, errW io.Writer, sp Spinner) int {
	records, err := readPairs(cfg.Batch)
	if err != nil {
		PresentError(errW, err)
		return apperrors.ExitCodeFor(err)
	}

	argA, argB, err := batchArguments(records)
	if err != nil {
		PresentError(errW, err)
		return apperrors.ExitCodeFor(err)
	}
	args := []exec.Argument{argA, argB}
	if cfg.ResultScale != config.OmitResultScale {
		args = append(args, exec.ScaleArg(uint64(cfg.ResultScale)))
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	var (
		col decimal.Column[decimal256.Num]
		typ decimal.Type
	)
	start := time.Now()
	err = withSpinner(sp, len(records), func() error {
		var callErr error
		switch cfg.Op {
		case config.OpDivide:
			col, typ, callErr = eng.DivideDecimal(ctx, args)
		default:
			col, typ, callErr = eng.MultiplyDecimal(ctx, args)
		}
		return callErr
	})
	elapsed := time.Since(start)
	if err != nil {
		PresentError(errW, err)
		return apperrors.ExitCodeFor(err)
	}

	if err := writeResults(cfg.Out, out, records, col, typ); err != nil {
		PresentError(errW, err)
		return apperrors.ExitCodeFor(err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(errW, "%s%d rows in %s%s\n",
			ui.ColorSuccess(), len(records), FormatExecutionDuration(elapsed), ui.ColorReset())
	}
	if cfg.Verbose {
		delta := metrics.Delta(before, collector.Snapshot())
		sys := sysmon.Sample()
		fmt.Fprintf(errW, "%sheap +%d KiB, %d GC cycles, cpu %.1f%%, mem %.1f%%%s\n",
			ui.ColorSecondary(), delta.HeapAlloc/1024, delta.NumGC,
			sys.CPUPercent, sys.MemPercent, ui.ColorReset())
	}
	return apperrors.ExitSuccess
}

// pair is one raw input row.
type pair struct {
	a, b string
}

// readPairs loads the input CSV. Every record must have exactly two fields.
func readPairs(path string) ([]pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewConfigError("cannot open batch file: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, apperrors.NewConfigError("cannot read batch file %s: %v", path, err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewConfigError("batch file %s is empty", path)
	}

	pairs := make([]pair, len(records))
	for i, rec := range records {
		pairs[i] = pair{a: rec[0], b: rec[1]}
	}
	return pairs, nil
}

// batchArguments parses both literal columns and assembles them into aligned
// columnar operands.
func batchArguments(records []pair) (exec.Argument, exec.Argument, error) {
	valsA := make([]decimal.Value, len(records))
	valsB := make([]decimal.Value, len(records))
	for i, rec := range records {
		va, err := decimal.Parse(rec.a)
		if err != nil {
			return exec.Argument{}, exec.Argument{}, apperrors.NewConfigError("row %d: %v", i+1, err)
		}
		vb, err := decimal.Parse(rec.b)
		if err != nil {
			return exec.Argument{}, exec.Argument{}, apperrors.NewConfigError("row %d: %v", i+1, err)
		}
		valsA[i], valsB[i] = va, vb
	}

	colA, typA, err := decimal.BuildColumn(valsA)
	if err != nil {
		return exec.Argument{}, exec.Argument{}, apperrors.NewConfigError("first operand column: %v", err)
	}
	colB, typB, err := decimal.BuildColumn(valsB)
	if err != nil {
		return exec.Argument{}, exec.Argument{}, apperrors.NewConfigError("second operand column: %v", err)
	}
	return exec.ColumnArg(typA, colA), exec.ColumnArg(typB, colB), nil
}

// writeResults emits one a,b,result record per row to the output path, or to
// out when no path is configured.
func writeResults(path string, out io.Writer, records []pair, col decimal.Column[decimal256.Num], typ decimal.Type) error {
	w := out
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return apperrors.NewConfigError("cannot create output file: %v", err)
		}
		defer f.Close()
		w = f
	}

	cw := csv.NewWriter(w)
	for i, rec := range records {
		value := decimal.Format(col[i].BigInt(), typ.Scale)
		if err := cw.Write([]string{rec.a, rec.b, value}); err != nil {
			return apperrors.WrapError(err, "writing result row %d", i+1)
		}
	}
	cw.Flush()
	return cw.Error()
}
