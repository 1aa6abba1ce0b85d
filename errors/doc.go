// Package errors provides the unified error type and error codes used across
// radiowatch.
//
// Every failure surfaced by a component is an *AppError carrying a
// machine-readable code, a retryable flag, and the underlying cause. The poll
// loop uses the code and retryable flag to decide between backing off and
// recording a per-call failure.
package errors
