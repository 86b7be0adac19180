// Package config defines the application configuration and its resolution
// from command-line flags and DECCALC_* environment variables.
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/agbru/deccalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable key consulted for
// configuration overrides (e.g. DECCALC_WORKERS).
const EnvPrefix = "DECCALC_"

// OmitResultScale is the ResultScale value meaning "no explicit scale
// argument": the engine then uses max(scaleA, scaleB).
const OmitResultScale = -1

// Operation names accepted by the -op flag.
const (
	OpMultiply = "mul"
	OpDivide   = "div"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Op selects the decimal function: "mul" or "div".
	Op string
	// A and B are the operand literals for one-shot evaluation.
	A string
	B string
	// ResultScale is the explicit result scale, or OmitResultScale.
	ResultScale int
	// Batch is the path of a CSV file of "a,b" rows to evaluate as one batch.
	Batch string
	// Out is the path the batch results are written to; empty writes to stdout.
	Out string
	// REPL starts the interactive session instead of a one-shot evaluation.
	REPL bool
	// Workers caps goroutines per batch call; 0 means one per CPU.
	Workers int
	// ParallelThreshold is the minimum batch size for parallel evaluation;
	// 0 keeps the engine default.
	ParallelThreshold int
	// MetricsAddr, when non-empty, serves prometheus metrics on this address.
	MetricsAddr string
	// Timeout bounds the whole run; 0 means no limit.
	Timeout time.Duration
	// Verbose enables debug logging and the post-run resource summary.
	Verbose bool
	// Quiet suppresses all non-result output.
	Quiet bool
	// LightTheme selects colors readable on light terminal backgrounds.
	LightTheme bool
}

// ParseConfig resolves the configuration from command-line arguments, then
// environment variables for anything not set on the command line, and
// validates the result. flag.ErrHelp is returned as-is so callers can treat
// -h as a clean exit.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{ResultScale: OmitResultScale}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Op, "op", OpMultiply, "decimal function to evaluate: mul or div")
	fs.StringVar(&cfg.A, "a", "", "first operand as a decimal literal, e.g. 1.23")
	fs.StringVar(&cfg.B, "b", "", "second operand as a decimal literal")
	fs.IntVar(&cfg.ResultScale, "scale", OmitResultScale, "explicit result scale in [0,76]; -1 uses max(scaleA, scaleB)")
	fs.StringVar(&cfg.Batch, "batch", "", "CSV file of a,b rows to evaluate as one batch")
	fs.StringVar(&cfg.Out, "out", "", "file the batch results are written to (default stdout)")
	fs.BoolVar(&cfg.REPL, "repl", false, "start an interactive session")
	fs.IntVar(&cfg.Workers, "workers", 0, "max goroutines per batch call (0 = one per CPU)")
	fs.IntVar(&cfg.ParallelThreshold, "parallel-threshold", 0, "min rows before a batch is parallelized (0 = engine default)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, e.g. :9090")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "abort the run after this duration (0 = no limit)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output (debug logging, resource summary)")
	fs.BoolVar(&cfg.Quiet, "q", false, "only print results")
	fs.BoolVar(&cfg.LightTheme, "light", false, "colors for light terminal backgrounds")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency, returning apperrors.ConfigError on
// the first violation.
func (c AppConfig) Validate() error {
	if c.Op != OpMultiply && c.Op != OpDivide {
		return apperrors.NewConfigError("invalid -op %q: expected %q or %q", c.Op, OpMultiply, OpDivide)
	}
	if c.ResultScale != OmitResultScale && (c.ResultScale < 0 || c.ResultScale > 76) {
		return apperrors.NewConfigError("invalid -scale %d: must be in [0, 76]", c.ResultScale)
	}
	if !c.REPL && c.Batch == "" {
		if c.A == "" || c.B == "" {
			return apperrors.NewConfigError("operands required: provide -a and -b, or -batch, or -repl")
		}
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("invalid -workers %d: must be >= 0", c.Workers)
	}
	if c.ParallelThreshold < 0 {
		return apperrors.NewConfigError("invalid -parallel-threshold %d: must be >= 0", c.ParallelThreshold)
	}
	if c.Timeout < 0 {
		return apperrors.NewConfigError("invalid -timeout %s: must be >= 0", c.Timeout)
	}
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("-v and -q are mutually exclusive")
	}
	return nil
}
