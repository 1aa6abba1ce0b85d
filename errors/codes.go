package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates malformed credentials, claims, or config.
	// Fatal to the operation attempted, not to the process.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeAuthentication indicates bad credentials or an expired session.
	// Triggers re-authentication on the next attempt.
	ErrCodeAuthentication ErrorCode = "AUTHENTICATION_ERROR"
	// ErrCodeTransientNetwork indicates a timeout or connection failure.
	// Retried with backoff at the poll-loop level.
	ErrCodeTransientNetwork ErrorCode = "TRANSIENT_NETWORK_ERROR"
	// ErrCodeTranscriptionProvider indicates a backend-specific transcription
	// failure. Recorded as call-level failure text.
	ErrCodeTranscriptionProvider ErrorCode = "TRANSCRIPTION_PROVIDER_ERROR"
	// ErrCodeDataShape indicates unexpected or missing response fields.
	// Callers degrade to defaults rather than abort.
	ErrCodeDataShape ErrorCode = "DATA_SHAPE_ERROR"
	// ErrCodeInvalidInput indicates invalid caller-supplied input.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTransientNetwork:      true,
	ErrCodeTranscriptionProvider: true,
	ErrCodeAuthentication:        false,
	ErrCodeConfiguration:         false,
	ErrCodeDataShape:             false,
	ErrCodeInvalidInput:          false,
	ErrCodeInternal:              false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
