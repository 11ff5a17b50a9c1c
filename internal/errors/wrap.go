// Package errors provides error wrapping utilities for consistent error handling.
package errors

import (
	"errors"
	"fmt"
)

// ErrorWrapper provides context-aware error wrapping.
type ErrorWrapper struct {
	operation string
	module    string
}

// NewWrapper creates a new error wrapper with operation and module context.
func NewWrapper(module, operation string) *ErrorWrapper {
	return &ErrorWrapper{
		module:    module,
		operation: operation,
	}
}

// Wrap wraps an error with operation context.
// Returns nil if err is nil.
func (w *ErrorWrapper) Wrap(err error, userMessage string) error {
	if err == nil {
		return nil
	}
	return &WrappedError{
		Operation:   w.operation,
		Module:      w.module,
		Cause:       err,
		UserMessage: userMessage,
	}
}

// Wrapf wraps an error with formatted message.
func (w *ErrorWrapper) Wrapf(err error, userMessageFormat string, args ...any) error {
	if err == nil {
		return nil
	}
	return &WrappedError{
		Operation:   w.operation,
		Module:      w.module,
		Cause:       err,
		UserMessage: fmt.Sprintf(userMessageFormat, args...),
	}
}

// WrappedError contains both internal error details and user-facing message.
type WrappedError struct {
	Operation   string // Operation being performed (e.g., "search_courses", "get_professor")
	Module      string // Module name (e.g., "catalog", "professors", "openalex")
	Cause       error  // Underlying error
	UserMessage string // User-friendly message
}

func (e *WrappedError) Error() string {
	return fmt.Sprintf("[%s:%s] %s: %v", e.Module, e.Operation, e.UserMessage, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *WrappedError) Unwrap() error {
	return e.Cause
}

// UserFacing extracts the user-facing message from an error chain.
// Falls back to the raw error message when no WrappedError is present.
func UserFacing(err error) string {
	var wrapped *WrappedError
	if errors.As(err, &wrapped) {
		return wrapped.UserMessage
	}
	return err.Error()
}
