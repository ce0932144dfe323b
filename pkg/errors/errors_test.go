package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "process not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "process not found" {
		t.Errorf("expected message 'process not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeTelemetry, "device query failed", cause)

	if err.Code != ErrCodeTelemetry {
		t.Errorf("expected code %s, got %s", ErrCodeTelemetry, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("not supported")
	ctx := map[string]any{
		"device": 1,
		"metric": "fan_speed",
	}

	err := WrapWithContext(ErrCodeTelemetry, "GPU query failed", cause, ctx)

	if err.Code != ErrCodeTelemetry {
		t.Errorf("expected code %s, got %s", ErrCodeTelemetry, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["metric"] != "fan_speed" {
		t.Errorf("expected metric to be fan_speed")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeIO, "failed to get hostname", errors.New("root cause")),
			expected: "[IO_ERROR] failed to get hostname: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain", errors.New("plain"), ""},
		{"structured", New(ErrCodeSystem, "x"), ErrCodeSystem},
		{"fmt wrapped", fmt.Errorf("outer: %w", New(ErrCodeEncoding, "x")), ErrCodeEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCodeNotFound, "pid 42 not in process table")
	outer := Wrap(ErrCodeSystem, "failed to resolve process owner", inner)

	if !HasCode(outer, ErrCodeSystem) {
		t.Error("expected outer code to match")
	}
	if !HasCode(outer, ErrCodeNotFound) {
		t.Error("expected nested code to match")
	}
	if HasCode(outer, ErrCodeTelemetry) {
		t.Error("unexpected match for telemetry code")
	}
	if HasCode(errors.New("plain"), ErrCodeNotFound) {
		t.Error("plain errors carry no code")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeIO,
		ErrCodeEncoding,
		ErrCodeTelemetry,
		ErrCodeSystem,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
