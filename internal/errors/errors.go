package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for limbcalc.
const (
	ExitSuccess          = 0   // Indicates successful execution.
	ExitErrorGeneric     = 1   // Indicates a generic error.
	ExitErrorTimeout     = 2   // Indicates the run timed out.
	ExitErrorCheckFailed = 3   // Indicates a self-check property was violated.
	ExitErrorConfig      = 4   // Indicates a configuration error.
	ExitErrorCanceled    = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as an invalid flag
// or environment value.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError reports a failed arithmetic operation while preserving the
// original cause. Contract violations raised by the arithmetic packages reach
// the application as a CalculationError through RecoverPanic.
type CalculationError struct {
	// Op names the operation that failed, if known.
	Op string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the cause message, prefixed by the operation when set.
func (e CalculationError) Error() string {
	if e.Op == "" {
		return e.Cause.Error()
	}
	return e.Op + ": " + e.Cause.Error()
}

// Unwrap returns the original wrapped error.
func (e CalculationError) Unwrap() error { return e.Cause }

// PanicError carries the value of a recovered panic.
type PanicError struct {
	Value any
}

// Error formats the recovered value.
func (e PanicError) Error() string { return fmt.Sprint(e.Value) }

// RecoverPanic converts a recovered panic value into a CalculationError for
// op. It returns nil when r is nil, so it can be called unconditionally from a
// deferred function:
//
//	defer func() {
//		if e := apperrors.RecoverPanic("divmod", recover()); e != nil {
//			err = e
//		}
//	}()
//
// Runtime errors such as nil dereferences are not contract violations and
// are re-panicked.
func RecoverPanic(op string, r any) error {
	if r == nil {
		return nil
	}
	switch v := r.(type) {
	case interface{ RuntimeError() }:
		panic(v)
	case error:
		return CalculationError{Op: op, Cause: v}
	}
	return CalculationError{Op: op, Cause: PanicError{Value: r}}
}

// TimeoutError represents a run that exceeded its time limit.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// CheckFailure reports a self-check property that did not hold for some
// sample.
type CheckFailure struct {
	// Check is the name of the violated property.
	Check string
	// Detail describes the counterexample.
	Detail string
}

// Error returns a formatted message describing the failure.
func (e CheckFailure) Error() string {
	return fmt.Sprintf("check %q failed: %s", e.Check, e.Detail)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
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

// ExitCode maps an error returned by the application to its exit status.
func ExitCode(err error) int {
	var (
		configErr     ConfigError
		validationErr ValidationError
		timeoutErr    TimeoutError
		checkErr      CheckFailure
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &checkErr):
		return ExitErrorCheckFailed
	}
	return ExitErrorGeneric
}
