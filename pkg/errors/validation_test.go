package errors

import (
	"strings"
	"testing"
)

func TestValidateTemplateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "boardroom", false},
		{"with dash", "pitch-deck", false},
		{"with underscore", "quarterly_review", false},
		{"with digits", "conference2026", false},
		{"mixed case", "BoardRoom", false},
		{"single char", "q", false},
		{"max length", strings.Repeat("a", 100), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 101), true},
		{"parent directory", "..", true},
		{"path traversal", "../../etc/passwd", true},
		{"embedded dots", "board..room", true},
		{"forward slash", "decks/boardroom", true},
		{"backslash", `decks\boardroom`, true},
		{"leading dot", ".boardroom", true},
		{"null byte", "board\x00room", true},
		{"control char", "board\x01room", true},
		{"newline", "board\nroom", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTemplateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateTemplateName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateSessionID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"full uuid", "3f9c21aa-8a3e-43dc-b1c0-0fd1c1a0cafe", false},
		{"short prefix", "3f9c21aa", false},
		{"uppercase", "3F9C21AA", false},
		{"single char", "a", false},
		{"max length", strings.Repeat("f", 64), false},

		{"empty", "", true},
		{"too long", strings.Repeat("f", 65), true},
		{"forward slash", "3f9c/21aa", true},
		{"backslash", `3f9c\21aa`, true},
		{"path traversal", "../latest", true},
		{"with dot", "3f9c.json", true},
		{"with space", "3f9c 21aa", true},
		{"punctuation", "3f9c21aa!", true},
		{"null byte", "3f9c\x0021aa", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSessionID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateSessionID(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidTemplate,
		ErrCodeInvalidPayload,
		ErrCodeInvalidConfig,
		ErrCodeInvalidFormat,
		ErrCodeInvalidOptions,
		ErrCodeNotFound,
		ErrCodeTemplateNotFound,
		ErrCodeFileNotFound,
		ErrCodeSessionNotFound,
		ErrCodeAnalysisFailed,
		ErrCodeNoUsableLayout,
		ErrCodeMatchingFailed,
		ErrCodeGenerationFailed,
		ErrCodeBadModelOutput,
		ErrCodeSessionExpired,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
