package errors

import (
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Terminal indicates the failing generator cannot produce further values.
	Terminal bool `json:"terminal"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic terminal detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Terminal: IsTerminalCode(code),
	}
}

// Sentinels for use with errors.Is. They carry no message or details.
var (
	ErrInvalidArgument = &AppError{Code: ErrCodeInvalidArgument}
	ErrOutOfRange      = &AppError{Code: ErrCodeOutOfRange}
	ErrOverflow        = &AppError{Code: ErrCodeOverflow}
	ErrEmptySource     = &AppError{Code: ErrCodeEmptySource}
	ErrInvalidConfig   = &AppError{Code: ErrCodeInvalidConfig}
	ErrInternal        = &AppError{Code: ErrCodeInternal}
)

// --- Constructors ---

// NilArgument creates a new AppError for a required argument that was nil.
func NilArgument(name string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s must not be nil", name),
		Details: map[string]any{"argument": name},
	}
}

// OutOfRange creates a new AppError for an invalid range argument.
func OutOfRange(param, reason string) *AppError {
	return &AppError{
		Code: ErrCodeOutOfRange, Message: fmt.Sprintf("%s out of range: %s", param, reason),
		Details: map[string]any{"param": param},
	}
}

// Overflow creates a new AppError for a counter that cannot step past last
// without leaving its bits-wide integer range.
func Overflow(last any, bits int) *AppError {
	return &AppError{
		Code: ErrCodeOverflow, Message: fmt.Sprintf("stepping past %v overflows int%d", last, bits),
		Terminal: true,
		Details:  map[string]any{"last": last, "bits": bits},
	}
}

// EmptySource creates a new AppError for a circular sequence without elements.
func EmptySource() *AppError {
	return &AppError{
		Code: ErrCodeEmptySource, Message: "circular sequence source yielded no elements",
		Terminal: true,
	}
}

// InvalidConfig creates a new AppError for a configuration that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: message,
	}
}

// Internal creates a new AppError wrapping an unexpected failure.
func Internal(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: fmt.Sprintf("%s failed", operation),
		Details: map[string]any{"operation": operation}, Cause: cause,
	}
}
