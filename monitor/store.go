package monitor

import "sync"

// DefaultStoreCapacity bounds the transcript store when no capacity is
// configured.
const DefaultStoreCapacity = 100

// Store is a bounded, mutex-guarded transcript buffer. When full, appending
// evicts the oldest record. Insertion order is processing order.
type Store struct {
	mu       sync.Mutex
	capacity int
	records  []TranscriptRecord
}

// NewStore creates a Store holding at most capacity records. A non-positive
// capacity falls back to DefaultStoreCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultStoreCapacity
	}
	return &Store{capacity: capacity}
}

// Append adds a record, evicting the oldest when the store is full.
func (s *Store) Append(rec TranscriptRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == s.capacity {
		copy(s.records, s.records[1:])
		s.records = s.records[:len(s.records)-1]
	}
	s.records = append(s.records, rec)
}

// Records returns a copy of the stored records, oldest first.
func (s *Store) Records() []TranscriptRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TranscriptRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
