package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorOverflow = 3   // Indicates a decimal result exceeded the precision ceiling.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ArityError reports a call to a decimal function with the wrong number of
// arguments. Both engine operations accept exactly 2 or 3 arguments.
type ArityError struct {
	// Function is the name of the operation that was called.
	Function string
	// Got is the number of arguments actually supplied.
	Got int
}

// Error returns a formatted message describing the arity mismatch.
func (e ArityError) Error() string {
	return fmt.Sprintf("number of arguments for function %s does not match: 2 or 3 expected, got %d", e.Function, e.Got)
}

// TypeError reports an argument whose category or value does not satisfy the
// function contract: a non-decimal operand, or a result-scale argument that is
// not a constant unsigned integer in [0, 76].
type TypeError struct {
	// Function is the name of the operation that was called.
	Function string
	// Message explains which argument is illegal and why.
	Message string
}

// Error returns a formatted message describing the illegal argument.
func (e TypeError) Error() string {
	return fmt.Sprintf("illegal argument of function %s: %s", e.Function, e.Message)
}

// NewTypeError creates a TypeError for the given function with a formatted
// message.
func NewTypeError(function, format string, a ...any) error {
	return TypeError{Function: function, Message: fmt.Sprintf(format, a...)}
}

// OverflowError reports a computed decimal magnitude that needs more digits
// than the precision ceiling allows. It aborts the whole batch call at the
// first offending row.
type OverflowError struct {
	// Digits is the number of digits the result would have needed.
	Digits int
	// Limit is the precision ceiling that was exceeded.
	Limit int
}

// Error returns a formatted message describing the overflow.
func (e OverflowError) Error() string {
	return fmt.Sprintf("decimal overflow: result requires %d digits, maximum is %d", e.Digits, e.Limit)
}

// DivisionByZeroError reports a divisor with zero magnitude. Division by zero
// is an error condition, never a silent infinity or NaN.
type DivisionByZeroError struct {
	// Function is the name of the operation that was called.
	Function string
}

// Error returns a formatted message describing the zero divisor.
func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero in function %s", e.Function)
}

// CalculationError encapsulates an evaluation error while preserving the
// original cause. This allows for structured error handling and inspection of
// what went wrong during batch evaluation.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code the CLI should return.
// Context cancellation takes precedence over the specific error kind so that
// an interrupted batch reports as canceled rather than failed.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	}
	var overflow OverflowError
	if errors.As(err, &overflow) {
		return ExitErrorOverflow
	}
	var cfg ConfigError
	if errors.As(err, &cfg) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
