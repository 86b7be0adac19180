package exec

import (
	"context"
	"runtime"
	"time"

	"github.com/apache/arrow/go/v11/arrow/decimal256"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/deccalc/internal/decimal"
	apperrors "github.com/agbru/deccalc/internal/errors"
	"github.com/agbru/deccalc/internal/logging"
	"github.com/agbru/deccalc/internal/metrics"
)

// instrumentationName identifies this package's tracer.
const instrumentationName = "github.com/agbru/deccalc/internal/exec"

// DefaultParallelThreshold is the default batch row count at which evaluation
// fans out across goroutines. Below this the per-goroutine overhead exceeds
// the benefit; each row costs at most ~76x76 digit operations.
const DefaultParallelThreshold = 4096

// Engine evaluates the decimal functions over columnar batches. The zero
// configuration (New with no options) logs nothing, records no metrics, and
// parallelizes large batches across all available CPUs. An Engine is
// immutable after construction and safe for concurrent use.
type Engine struct {
	log       logging.Logger
	metrics   *metrics.Engine
	tracer    trace.Tracer
	workers   int
	threshold int
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithLogger sets the structured logger for per-call diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMetrics sets the prometheus collector set for the engine.
func WithMetrics(m *metrics.Engine) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for
// per-call spans. The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) { e.tracer = tp.Tracer(instrumentationName) }
}

// WithWorkers caps the number of goroutines a single batch call may use.
// A value of 1 or less disables parallel evaluation.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithParallelThreshold sets the minimum row count for parallel evaluation.
func WithParallelThreshold(n int) Option {
	return func(e *Engine) { e.threshold = n }
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:       logging.NopLogger{},
		tracer:    otel.Tracer(instrumentationName),
		workers:   runtime.GOMAXPROCS(0),
		threshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MultiplyDecimal evaluates multiplyDecimal over one batch call. It returns
// the 256-bit result column and its declared type, or the first error
// encountered; a failed call yields no partial rows.
func (e *Engine) MultiplyDecimal(ctx context.Context, args []Argument) (decimal.Column[decimal256.Num], decimal.Type, error) {
	return e.evaluate(ctx, decimal.MultiplyTransform{}, args)
}

// DivideDecimal evaluates divideDecimal over one batch call. It returns the
// 256-bit result column and its declared type, or the first error
// encountered; a failed call yields no partial rows.
func (e *Engine) DivideDecimal(ctx context.Context, args []Argument) (decimal.Column[decimal256.Num], decimal.Type, error) {
	return e.evaluate(ctx, decimal.DivideTransform{}, args)
}

func (e *Engine) evaluate(ctx context.Context, t decimal.Transform, args []Argument) (decimal.Column[decimal256.Num], decimal.Type, error) {
	p, err := validate(t.Name(), args)
	if err != nil {
		e.metrics.ObserveCall(t.Name(), 0, 0, err)
		return nil, decimal.Type{}, err
	}

	ctx, span := e.tracer.Start(ctx, t.Name(), trace.WithAttributes(
		attribute.Int("decimal.rows", p.rows),
		attribute.String("decimal.width_a", p.a.Type.Width.String()),
		attribute.String("decimal.width_b", p.b.Type.Width.String()),
		attribute.Int("decimal.result_scale", int(p.resultType.Scale)),
	))
	defer span.End()

	k, ok := kernels[widthPair{a: p.a.Type.Width, b: p.b.Type.Width}]
	if !ok {
		// Unreachable: the validator admits only the 16 registered pairs.
		err := apperrors.NewTypeError(t.Name(), "no kernel for width pair %s/%s", p.a.Type.Width, p.b.Type.Width)
		e.metrics.ObserveCall(t.Name(), 0, 0, err)
		return nil, decimal.Type{}, err
	}

	start := time.Now()
	col, err := k.execute(ctx, t, p, parallelism{workers: e.workers, threshold: e.threshold})
	elapsed := time.Since(start)

	if err != nil {
		err = apperrors.CalculationError{Cause: err}
	}
	e.metrics.ObserveCall(t.Name(), p.rows, elapsed, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.log.Error("batch evaluation failed", err,
			logging.String("function", t.Name()),
			logging.Int("rows", p.rows))
		return nil, decimal.Type{}, err
	}

	e.log.Debug("batch evaluated",
		logging.String("function", t.Name()),
		logging.Int("rows", p.rows),
		logging.String("result_type", p.resultType.String()),
		logging.Float64("duration_seconds", elapsed.Seconds()))
	return col, p.resultType, nil
}
