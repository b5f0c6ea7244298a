package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidTemplate, "test message: %s", "value")

	if err.Code != ErrCodeInvalidTemplate {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidTemplate)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_TEMPLATE: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeAnalysisFailed, cause, "layout 3")

	if err.Code != ErrCodeAnalysisFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeAnalysisFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidPayload, "test"),
			code:     ErrCodeInvalidPayload,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidPayload, "test"),
			code:     ErrCodeMatchingFailed,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeNoUsableLayout, New(ErrCodeAnalysisFailed, "inner"), "outer"),
			code:     ErrCodeNoUsableLayout,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidPayload,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidPayload,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeTemplateNotFound, "test"),
			expected: ErrCodeTemplateNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLayoutFallbackError(t *testing.T) {
	t.Run("with layout name", func(t *testing.T) {
		cause := errors.New("bad geometry")
		err := &LayoutFallbackError{LayoutIndex: 2, LayoutName: "Two Content", Cause: cause}
		expected := "layout 2 (Two Content) analysis failed, using fallback: bad geometry"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is(err, cause) = false, want true")
		}
	})

	t.Run("without layout name", func(t *testing.T) {
		err := &LayoutFallbackError{LayoutIndex: 5, Cause: errors.New("x")}
		expected := "layout 5 analysis failed, using fallback: x"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("code method", func(t *testing.T) {
		err := &LayoutFallbackError{}
		if err.Code() != ErrCodeAnalysisFailed {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeAnalysisFailed)
		}
	})
}
