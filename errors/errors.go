package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common constructors ---

// Configuration creates an AppError for malformed credentials, claims, or config.
func Configuration(message string) *AppError {
	return New(ErrCodeConfiguration, message)
}

// Authentication creates an AppError for a failed authentication attempt.
// The upstream HTTP status is recorded in the details.
func Authentication(statusCode int) *AppError {
	return &AppError{
		Code:      ErrCodeAuthentication,
		Message:   fmt.Sprintf("authentication failed with status %d", statusCode),
		Retryable: false,
		Details:   map[string]any{"status": statusCode},
	}
}

// TransientNetwork creates an AppError for a timeout or connection failure.
func TransientNetwork(operation string, cause error) *AppError {
	return &AppError{
		Code:      ErrCodeTransientNetwork,
		Message:   fmt.Sprintf("%s failed", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
		Cause:     cause,
	}
}

// TranscriptionProvider creates an AppError for a backend transcription failure.
func TranscriptionProvider(provider string, cause error) *AppError {
	return &AppError{
		Code:      ErrCodeTranscriptionProvider,
		Message:   fmt.Sprintf("transcription via %s failed", provider),
		Retryable: true,
		Details:   map[string]any{"provider": provider},
		Cause:     cause,
	}
}

// DataShape creates an AppError for unexpected or missing response fields.
func DataShape(field string) *AppError {
	return &AppError{
		Code:      ErrCodeDataShape,
		Message:   fmt.Sprintf("unexpected response shape: %s", field),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}

// InvalidInput creates an AppError for invalid caller-supplied input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:      ErrCodeInvalidInput,
		Message:   fmt.Sprintf("invalid input: %s", reason),
		Retryable: false,
		Details:   details,
	}
}

// Validation creates an AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code:      ErrCodeInvalidInput,
		Message:   message,
		Retryable: false,
	}
}

// Internal creates an AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:      ErrCodeInternal,
		Message:   "an unexpected error occurred",
		Retryable: false,
		Cause:     cause,
	}
}

// --- Inspection helpers ---

// CodeOf returns the error code of err, or ErrCodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	return stderrors.As(err, &ae) && ae.Code == code
}

// IsRetryable reports whether err is marked retryable.
func IsRetryable(err error) bool {
	var ae *AppError
	return stderrors.As(err, &ae) && ae.Retryable
}
