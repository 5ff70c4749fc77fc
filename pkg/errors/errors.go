// Package errors provides structured error types for slidesmith.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI, HTTP server, and library callers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - PARSE_*: diagram DSL parsing failures
//   - LAYOUT_*: layout computation failures
//   - CONFIG_*: theme/style resolution failures
//   - INVALID_*: input validation failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeParseEmpty, "diagram has no content lines")
//	if errors.Is(err, errors.ErrCodeParseEmpty) {
//	    // Handle empty input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeConfigFile, origErr, "load theme %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Diagram parsing errors
	ErrCodeParseEmpty   Code = "PARSE_EMPTY"
	ErrCodeParseInvalid Code = "PARSE_INVALID"

	// Layout computation errors
	ErrCodeLayoutEmpty  Code = "LAYOUT_EMPTY"
	ErrCodeLayoutBounds Code = "LAYOUT_BOUNDS"
	ErrCodeLayoutTarget Code = "LAYOUT_TARGET"

	// Theme/style configuration errors
	ErrCodeConfigTag   Code = "CONFIG_UNKNOWN_TAG"
	ErrCodeConfigShape Code = "CONFIG_UNKNOWN_SHAPE"
	ErrCodeConfigColor Code = "CONFIG_BAD_COLOR"
	ErrCodeConfigFile  Code = "CONFIG_FILE"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidStrategy Code = "INVALID_STRATEGY"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

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

// IsParse reports whether the error belongs to the PARSE_* category.
func IsParse(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "PARSE_")
}

// IsLayout reports whether the error belongs to the LAYOUT_* category.
func IsLayout(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "LAYOUT_")
}

// IsConfig reports whether the error belongs to the CONFIG_* category.
func IsConfig(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "CONFIG_")
}
