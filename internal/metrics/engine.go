// Package metrics provides prometheus collectors for the decimal engine and
// runtime memory snapshots for diagnostics.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/agbru/deccalc/internal/errors"
)

// Engine holds the prometheus collectors tracking batch evaluation. A nil
// *Engine is a valid no-op receiver, so instrumentation can stay unconditional
// at call sites.
type Engine struct {
	rows     *prometheus.CounterVec
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewEngine creates and registers the engine collectors with reg.
func NewEngine(reg prometheus.Registerer) *Engine {
	factory := promauto.With(reg)
	return &Engine{
		rows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "deccalc_rows_processed_total",
			Help: "Rows successfully evaluated, by function.",
		}, []string{"function"}),
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "deccalc_calls_total",
			Help: "Batch calls by function and outcome.",
		}, []string{"function", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "deccalc_batch_duration_seconds",
			Help:    "Wall time of successful batch calls, by function.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"function"}),
	}
}

// ObserveCall records the outcome of one batch call.
func (m *Engine) ObserveCall(function string, rows int, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(function, statusFor(err)).Inc()
	if err == nil {
		m.rows.WithLabelValues(function).Add(float64(rows))
		m.duration.WithLabelValues(function).Observe(d.Seconds())
	}
}

// statusFor maps an evaluation error to its outcome label.
func statusFor(err error) string {
	if err == nil {
		return "ok"
	}
	var (
		arity    apperrors.ArityError
		typeErr  apperrors.TypeError
		overflow apperrors.OverflowError
		divZero  apperrors.DivisionByZeroError
	)
	switch {
	case errors.As(err, &arity):
		return "arity"
	case errors.As(err, &typeErr):
		return "type"
	case errors.As(err, &overflow):
		return "overflow"
	case errors.As(err, &divZero):
		return "division_by_zero"
	case apperrors.IsContextError(err):
		return "canceled"
	}
	return "error"
}
