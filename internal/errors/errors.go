// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested entity is absent from the dataset.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates a required request field is missing or empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required external credential is absent.
	ErrNotConfigured = errors.New("capability not configured")

	// ErrUpstream indicates an external collaborator failed or returned
	// unusable data.
	ErrUpstream = errors.New("upstream service failed")

	// ErrRateLimitExceeded indicates the caller exceeded their quota.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err wraps ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotConfigured reports whether err wraps ErrNotConfigured.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

// IsUpstream reports whether err wraps ErrUpstream.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsRateLimitExceeded reports whether err wraps ErrRateLimitExceeded.
func IsRateLimitExceeded(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

// NotFoundf returns an ErrNotFound-wrapping error with a formatted detail.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// InvalidInputf returns an ErrInvalidInput-wrapping error with a formatted detail.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotConfiguredf returns an ErrNotConfigured-wrapping error naming the
// missing capability.
func NotConfiguredf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotConfigured, fmt.Sprintf(format, args...))
}

// Upstreamf returns an ErrUpstream-wrapping error with a formatted detail.
func Upstreamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUpstream, fmt.Sprintf(format, args...))
}

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is recognize validation errors as invalid input.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
