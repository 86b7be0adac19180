package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestArityError(t *testing.T) {
	err := ArityError{Function: "multiplyDecimal", Got: 1}
	want := "number of arguments for function multiplyDecimal does not match: 2 or 3 expected, got 1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTypeError(t *testing.T) {
	err := NewTypeError("divideDecimal", "first argument must be a decimal operand")
	want := "illegal argument of function divideDecimal: first argument must be a decimal operand"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	var typeErr TypeError
	if !errors.As(err, &typeErr) {
		t.Error("NewTypeError result is not a TypeError")
	}
}

func TestOverflowError(t *testing.T) {
	err := OverflowError{Digits: 77, Limit: 76}
	want := "decimal overflow: result requires 77 digits, maximum is 76"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCalculationErrorUnwrap(t *testing.T) {
	cause := OverflowError{Digits: 80, Limit: 76}
	err := CalculationError{Cause: cause}
	var overflow OverflowError
	if !errors.As(err, &overflow) || overflow.Digits != 80 {
		t.Errorf("errors.As through CalculationError failed: %v", err)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) != nil")
	}
	base := errors.New("boom")
	wrapped := WrapError(base, "evaluating row %d", 3)
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}
	if wrapped.Error() != "evaluating row 3: boom" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
}

func TestIsContextError(t *testing.T) {
	if !IsContextError(context.Canceled) || !IsContextError(context.DeadlineExceeded) {
		t.Error("context errors not recognized")
	}
	if IsContextError(errors.New("boom")) {
		t.Error("plain error recognized as context error")
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout},
		{"overflow", OverflowError{Digits: 77, Limit: 76}, ExitErrorOverflow},
		{"wrapped overflow", fmt.Errorf("row 3: %w", OverflowError{Digits: 77, Limit: 76}), ExitErrorOverflow},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"arity", ArityError{Function: "multiplyDecimal", Got: 4}, ExitErrorGeneric},
		{"division by zero", DivisionByZeroError{Function: "divideDecimal"}, ExitErrorGeneric},
		{"generic", errors.New("boom"), ExitErrorGeneric},
		{"canceled wins over overflow", fmt.Errorf("%w: %w", context.Canceled, OverflowError{Digits: 77, Limit: 76}), ExitErrorCanceled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCodeFor(tc.err); got != tc.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
