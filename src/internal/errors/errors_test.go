package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "no blocklist URLs found"},
			expected: "[CONFIG_ERROR] no blocklist URLs found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeList, "failed to download list", errors.New("connection refused")),
			expected: "[LIST_ERROR] failed to download list: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected errors.Is to find the cause")
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeConfig, Message: "test error"}
	err2 := &Error{Code: ErrCodeConfig, Message: "another error"}
	err3 := &Error{Code: ErrCodeList, Message: "list error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name string
		err  *Error
		code ErrorCode
	}{
		{"config", NewConfigError("m", cause), ErrCodeConfig},
		{"validation", NewValidationError("m", cause), ErrCodeValidation},
		{"list", NewListError("m", cause), ErrCodeList},
		{"output", NewOutputError("m", cause), ErrCodeOutput},
		{"internal", NewInternalError("m", cause), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Expected code %v, got %v", tt.code, tt.err.Code)
			}
			if tt.err.Message != "m" {
				t.Errorf("Expected message 'm', got %v", tt.err.Message)
			}
			if tt.err.Cause != cause {
				t.Errorf("Expected cause to be preserved")
			}
		})
	}
}

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"config error", NewConfigError("empty url file", nil), true},
		{"validation error", NewValidationError("bad settings", nil), true},
		{"list error", NewListError("download failed", nil), false},
		{"wrapped with fmt", fmt.Errorf("generate: %w", NewConfigError("bad format", nil)), true},
		{"config error nested in output error", NewOutputError("write", NewConfigError("x", nil)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigError(tt.err); got != tt.want {
				t.Errorf("IsConfigError() = %v, want %v", got, tt.want)
			}
		})
	}
}
