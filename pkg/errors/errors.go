// Package errors provides structured error types for the pptgenerator application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND_*: Resource not found
//   - ANALYSIS_* / NO_USABLE_LAYOUT: Template analysis failures
//   - MATCHING_*: Content-to-layout matching failures (never fatal)
//   - GENERATION_* / BAD_MODEL_OUTPUT: Content generation failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTemplate, "template %q has no layouts", name)
//	if errors.Is(err, errors.ErrCodeInvalidTemplate) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeAnalysisFailed, origErr, "layout %d", idx)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidTemplate Code = "INVALID_TEMPLATE"
	ErrCodeInvalidPayload  Code = "INVALID_PAYLOAD"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidOptions  Code = "INVALID_OPTIONS"

	// Resource not found errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeTemplateNotFound Code = "TEMPLATE_NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeSessionNotFound  Code = "SESSION_NOT_FOUND"

	// Template analysis errors
	ErrCodeAnalysisFailed Code = "ANALYSIS_FAILED"
	ErrCodeNoUsableLayout Code = "NO_USABLE_LAYOUT"

	// Content matching errors. These signal degradation, not failure:
	// callers log them and fall back rather than abort a run.
	ErrCodeMatchingFailed Code = "MATCHING_FAILED"

	// Content generation errors
	ErrCodeGenerationFailed Code = "GENERATION_FAILED"
	ErrCodeBadModelOutput   Code = "BAD_MODEL_OUTPUT"

	// Session errors
	ErrCodeSessionExpired Code = "SESSION_EXPIRED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// LayoutFallbackError reports that a single layout failed analysis and a
// synthesized fallback capability was used in its place. The surrounding
// template analysis still succeeds.
type LayoutFallbackError struct {
	LayoutIndex int    // Index of the layout within the template
	LayoutName  string // Layout name, if known
	Cause       error  // What went wrong during analysis
}

// Error implements the error interface.
func (e *LayoutFallbackError) Error() string {
	if e.LayoutName != "" {
		return fmt.Sprintf("layout %d (%s) analysis failed, using fallback: %v", e.LayoutIndex, e.LayoutName, e.Cause)
	}
	return fmt.Sprintf("layout %d analysis failed, using fallback: %v", e.LayoutIndex, e.Cause)
}

// Unwrap returns the underlying analysis error.
func (e *LayoutFallbackError) Unwrap() error {
	return e.Cause
}

// Code returns the error code for this error type.
func (e *LayoutFallbackError) Code() Code {
	return ErrCodeAnalysisFailed
}
