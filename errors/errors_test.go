package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeOutOfRange, "bad range")
	if err.Code != ErrCodeOutOfRange {
		t.Errorf("expected code %s, got %s", ErrCodeOutOfRange, err.Code)
	}
	if err.Message != "bad range" {
		t.Errorf("expected message 'bad range', got %q", err.Message)
	}
	if err.Terminal {
		t.Error("OUT_OF_RANGE should not be terminal")
	}
}

func TestAppError_New_Terminal(t *testing.T) {
	err := New(ErrCodeOverflow, "overflowed")
	if !err.Terminal {
		t.Error("OVERFLOW should be terminal")
	}
}

func TestAppError_NilArgument_Success(t *testing.T) {
	err := NilArgument("projection")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if err.Details["argument"] != "projection" {
		t.Errorf("expected argument=projection, got %v", err.Details["argument"])
	}
	if !strings.Contains(err.Message, "projection") {
		t.Errorf("expected message to name the argument, got %q", err.Message)
	}
}

func TestAppError_Overflow_Success(t *testing.T) {
	err := Overflow(int32(2147483647), 32)
	if err.Code != ErrCodeOverflow {
		t.Errorf("expected OVERFLOW, got %s", err.Code)
	}
	if err.Details["bits"] != 32 {
		t.Errorf("expected bits=32, got %v", err.Details["bits"])
	}
	if !strings.Contains(err.Error(), "2147483647") {
		t.Errorf("expected boundary value in message, got %q", err.Error())
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := InvalidConfig("bad recipe").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := OutOfRange("max", "must be > min").WithDetails(map[string]any{
		"min": 1,
	})
	if err.Details["min"] != 1 {
		t.Errorf("expected min=1 in details")
	}
	if err.Details["param"] != "max" {
		t.Error("expected original details to be preserved")
	}

	err.WithDetails(map[string]any{"max": 0})
	if err.Details["max"] != 0 {
		t.Error("expected max=0 to be merged")
	}
	if err.Details["min"] != 1 {
		t.Error("expected min=1 to be preserved after second merge")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := EmptySource().WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}

	err.WithDetail("key", "other")
	if err.Details["key"] != "other" {
		t.Errorf("expected key=other after overwrite")
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Internal("uuid", cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	if EmptySource().Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Is_MatchesSentinelByCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel *AppError
	}{
		{"NilArgument", NilArgument("first"), ErrInvalidArgument},
		{"OutOfRange", OutOfRange("max", "x"), ErrOutOfRange},
		{"Overflow", Overflow(int64(-1), 64), ErrOverflow},
		{"EmptySource", EmptySource(), ErrEmptySource},
		{"InvalidConfig", InvalidConfig("x"), ErrInvalidConfig},
		{"Internal", Internal("op", nil), ErrInternal},
		{"Wrapped", fmt.Errorf("pull 3: %w", Overflow(int8(127), 8)), ErrOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !stderrors.Is(tc.err, tc.sentinel) {
				t.Errorf("expected %v to match %s", tc.err, tc.sentinel.Code)
			}
		})
	}

	if stderrors.Is(Overflow(1, 8), ErrOutOfRange) {
		t.Error("different codes must not match")
	}
	if stderrors.Is(fmt.Errorf("plain"), ErrOverflow) {
		t.Error("plain errors must not match")
	}
}

func TestAppError_Terminal_Table(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		terminal bool
	}{
		{"Overflow", Overflow(1, 8), true},
		{"EmptySource", EmptySource(), true},
		{"NilArgument", NilArgument("fn"), false},
		{"OutOfRange", OutOfRange("max", ""), false},
		{"InvalidConfig", InvalidConfig(""), false},
		{"Internal", Internal("op", nil), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Terminal != tc.terminal {
				t.Errorf("expected terminal=%v, got %v", tc.terminal, tc.err.Terminal)
			}
			if IsTerminal(fmt.Errorf("wrap: %w", tc.err)) != tc.terminal {
				t.Errorf("IsTerminal through wrapping should be %v", tc.terminal)
			}
		})
	}
}

func TestAppError_IsAppError_Success(t *testing.T) {
	appErr := EmptySource()
	if !IsAppError(appErr) {
		t.Error("expected IsAppError to return true for AppError")
	}
	if !IsAppError(fmt.Errorf("wrapped: %w", appErr)) {
		t.Error("expected IsAppError to return true for wrapped AppError")
	}
	if IsAppError(fmt.Errorf("plain error")) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(fmt.Errorf("x: %w", Overflow(1, 16))); got != ErrCodeOverflow {
		t.Errorf("expected OVERFLOW, got %q", got)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("expected empty code, got %q", got)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}

	orig := NilArgument("source")
	if Wrap(orig) != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}
	if got := Wrap(fmt.Errorf("outer: %w", orig)); got.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", got.Code)
	}

	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}
