package monitor

import (
	"fmt"
	"sync"
	"testing"
)

func TestStore_CapAndFIFOEviction(t *testing.T) {
	s := NewStore(3)
	for i := 0; i < 5; i++ {
		s.Append(TranscriptRecord{Text: fmt.Sprintf("call %d", i)})
	}

	if s.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", s.Len())
	}
	records := s.Records()
	for i, want := range []string{"call 2", "call 3", "call 4"} {
		if records[i].Text != want {
			t.Errorf("record %d: expected %q, got %q", i, want, records[i].Text)
		}
	}
}

func TestStore_DefaultCapacity(t *testing.T) {
	s := NewStore(0)
	for i := 0; i < DefaultStoreCapacity+10; i++ {
		s.Append(TranscriptRecord{})
	}
	if s.Len() != DefaultStoreCapacity {
		t.Errorf("expected %d records, got %d", DefaultStoreCapacity, s.Len())
	}
}

func TestStore_RecordsReturnsCopy(t *testing.T) {
	s := NewStore(10)
	s.Append(TranscriptRecord{Text: "original"})

	records := s.Records()
	records[0].Text = "mutated"

	if s.Records()[0].Text != "original" {
		t.Error("Records must return a copy")
	}
}

func TestStats_ConcurrentCounts(t *testing.T) {
	stats := &Stats{}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				stats.CallReceived()
				stats.CallProcessed()
			}
		}()
	}
	wg.Wait()

	snap := stats.Snapshot()
	if snap.CallsReceived != 1000 || snap.CallsProcessed != 1000 {
		t.Errorf("unexpected counts: %+v", snap)
	}
	if snap.KeywordsMatched != 0 {
		t.Errorf("expected zero keyword matches, got %d", snap.KeywordsMatched)
	}
}
