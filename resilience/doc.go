// Package resilience provides retry with exponential backoff for outbound
// calls, and an incremental Backoff tracker used by long-running loops that
// must never terminate on transient errors.
package resilience
