package monitor

import "sync/atomic"

// Stats tracks pipeline counters. All methods are safe for concurrent use
// and reads are synchronous; there is no sampling delay.
type Stats struct {
	callsReceived   atomic.Int64
	callsProcessed  atomic.Int64
	keywordsMatched atomic.Int64
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	CallsReceived   int64 `json:"calls_received"`
	CallsProcessed  int64 `json:"calls_processed"`
	KeywordsMatched int64 `json:"keywords_matched"`
}

// CallReceived counts a call handed to the pipeline.
func (s *Stats) CallReceived() { s.callsReceived.Add(1) }

// CallProcessed counts a call that completed processing.
func (s *Stats) CallProcessed() { s.callsProcessed.Add(1) }

// KeywordsMatched counts a call whose transcript matched at least one keyword.
func (s *Stats) KeywordsMatched() { s.keywordsMatched.Add(1) }

// Snapshot returns a point-in-time copy of all counters.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		CallsReceived:   s.callsReceived.Load(),
		CallsProcessed:  s.callsProcessed.Load(),
		KeywordsMatched: s.keywordsMatched.Load(),
	}
}
