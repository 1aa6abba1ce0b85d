package resilience

import "time"

// Backoff tracks an exponential backoff across consecutive failures.
// It is not safe for concurrent use; each loop owns its own Backoff.
type Backoff struct {
	initial time.Duration
	max     time.Duration
	factor  float64
	attempt int
}

// NewBackoff creates a Backoff starting at initial and capped at max.
// A factor <= 1 defaults to 2.
func NewBackoff(initial, max time.Duration, factor float64) *Backoff {
	if initial <= 0 {
		initial = time.Second
	}
	if max < initial {
		max = initial
	}
	if factor <= 1 {
		factor = 2.0
	}
	return &Backoff{initial: initial, max: max, factor: factor}
}

// Next returns the delay for the next failure, growing exponentially.
func (b *Backoff) Next() time.Duration {
	b.attempt++
	return backoffForAttempt(b.attempt, b.initial, b.max, b.factor, 0)
}

// Reset clears the failure count after a success.
func (b *Backoff) Reset() {
	b.attempt = 0
}
