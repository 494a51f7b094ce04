// Package errors provides structured error types for the braidviz application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI, server, and library callers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input and configuration validation failures
//   - INTERNAL_*: Unexpected internal errors
//
// Word construction failures (bad strand count, zero generator, generator
// out of range) carry INVALID_WORD or INVALID_GENERATOR. Layout and render
// parameter failures carry INVALID_CONFIG, INVALID_FORMAT, or INVALID_STYLE.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGenerator, "generator %d out of range", g)
//	if errors.Is(err, errors.ErrCodeInvalidGenerator) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render %s", format)
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
	ErrCodeInvalidWord      Code = "INVALID_WORD"
	ErrCodeInvalidGenerator Code = "INVALID_GENERATOR"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle     Code = "INVALID_STYLE"
	ErrCodeInvalidInput     Code = "INVALID_INPUT"

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

// IsValidation reports whether err carries any INVALID_* code.
func IsValidation(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		switch e.Code {
		case ErrCodeInvalidWord, ErrCodeInvalidGenerator, ErrCodeInvalidConfig,
			ErrCodeInvalidFormat, ErrCodeInvalidStyle, ErrCodeInvalidInput:
			return true
		}
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
