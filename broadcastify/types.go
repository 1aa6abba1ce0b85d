package broadcastify

import (
	"encoding/json"
	"time"
)

// Cursor is an opaque feed position marker: everything at or before it has
// been fetched. It never decreases across successful polls for a channel set.
type Cursor string

// NoCursor requests a bootstrap fetch; the server decides how much history
// to return.
const NoCursor Cursor = ""

// SessionIdentity is the result of a successful user authentication.
// It is replaced wholesale on re-authentication, never patched in place.
type SessionIdentity struct {
	UserID   int
	Token    string
	IssuedAt time.Time
}

// CallRecord is one recorded transmission returned by the feed.
type CallRecord struct {
	// Group is the channel (talkgroup) reference the call arrived on.
	Group string
	// ReceivedAt is the call start time.
	ReceivedAt time.Time
	// Duration is the call length in seconds.
	Duration float64
	// AudioURL points at the recorded audio, when available.
	AudioURL string
	// Raw preserves the upstream call entity for downstream debugging.
	Raw json.RawMessage
}

// FetchResult is the outcome of one poll.
type FetchResult struct {
	// Calls are the new records, in upstream order.
	Calls []CallRecord
	// Cursor is the position to pass to the next poll. When the server
	// supplies no new position the prior cursor is carried forward.
	Cursor Cursor
	// AuthFailed signals that authentication failed and the cursor did not
	// advance; the caller should back off and retry instead of treating this
	// as a fatal error.
	AuthFailed bool
}

// Group is a discovered channel with its human-readable description.
type Group struct {
	ID          string
	Description string
}
