// Package errors provides structured error types for drehfreudig.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core, the batch driver and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The core (parser, layout, evaluator) only produces EMPTY_INPUT,
// MALFORMED_TREE and WIDTH_OVERFLOW. The batch driver adds FILE_UNREADABLE
// and INVALID_PATH, the configuration layer INVALID_CONFIG and
// INVALID_FORMAT.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedTree, "too many closing brackets at offset %d", i)
//	if errors.Is(err, errors.ErrCodeMalformedTree) {
//	    // Report and continue with the next file
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileUnreadable, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Tree input errors
	ErrCodeEmptyInput    Code = "EMPTY_INPUT"
	ErrCodeMalformedTree Code = "MALFORMED_TREE"
	ErrCodeWidthOverflow Code = "WIDTH_OVERFLOW"

	// Output errors
	ErrCodeRenderTooWide Code = "RENDER_TOO_WIDE"

	// File system errors
	ErrCodeFileUnreadable Code = "FILE_UNREADABLE"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsInputError reports whether err describes a problem with the tree
// description itself rather than with the environment.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeEmptyInput, ErrCodeMalformedTree, ErrCodeWidthOverflow:
		return true
	}
	return false
}
