package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors, raised at construction time.
const (
	// ErrCodeInvalidArgument indicates a required argument was nil.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeOutOfRange indicates an invalid numeric range.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Pull errors, raised while generating values.
const (
	// ErrCodeOverflow indicates a counter stepped past its integer width.
	ErrCodeOverflow ErrorCode = "OVERFLOW"
	// ErrCodeEmptySource indicates a circular sequence has nothing to replay.
	ErrCodeEmptySource ErrorCode = "EMPTY_SOURCE"
)

// Configuration and internal errors
const (
	// ErrCodeInvalidConfig indicates a configuration or recipe failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInternal indicates an unexpected failure of an underlying facility.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var terminalCodes = map[ErrorCode]bool{
	ErrCodeOverflow:    true,
	ErrCodeEmptySource: true,
}

// IsTerminalCode reports whether a generator that returned code will keep
// returning it on every further pull.
func IsTerminalCode(code ErrorCode) bool {
	return terminalCodes[code]
}
