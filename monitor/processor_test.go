package monitor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/skillsenselab/radiowatch/broadcastify"
	"github.com/skillsenselab/radiowatch/keyword"
	"github.com/skillsenselab/radiowatch/provider"
	"github.com/skillsenselab/radiowatch/transcription"
)

// fakeBackend is a scripted transcription backend.
type fakeBackend struct {
	name      string
	available bool
	text      string
	err       error
	calls     int
}

func (f *fakeBackend) Name() string                            { return f.name }
func (f *fakeBackend) IsAvailable(ctx context.Context) bool    { return f.available }
func (f *fakeBackend) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &transcription.Result{Text: f.text}, nil
}

func backendManager(t *testing.T, backend *fakeBackend) *provider.Manager[transcription.Provider] {
	t.Helper()
	mgr := transcription.NewManager(transcription.WithPriority(backend.name))
	mgr.Register(backend.name, func(cfg map[string]any) (transcription.Provider, error) {
		return backend, nil
	})
	if err := mgr.Initialize(backend.name, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return mgr
}

func testCall() broadcastify.CallRecord {
	return broadcastify.CallRecord{
		Group:      "100-22361",
		ReceivedAt: time.Unix(1000, 0),
		Duration:   5,
		AudioURL:   "http://a/1.mp3",
	}
}

func TestProcess_TranscribesAndMatches(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, text: "ICE officers on scene"}
	store := NewStore(10)
	stats := &Stats{}
	var notified []TranscriptRecord

	p := NewProcessor(ProcessorConfig{
		Matcher:  keyword.NewMatcher([]string{"ice", "dpss"}),
		Backends: backendManager(t, backend),
		Store:    store,
		Stats:    stats,
		Notifier: NotifierFunc(func(ctx context.Context, rec TranscriptRecord) error {
			notified = append(notified, rec)
			return nil
		}),
	})

	rec := p.Process(context.Background(), testCall())

	if rec.Text != "ICE officers on scene" {
		t.Errorf("unexpected text: %s", rec.Text)
	}
	if len(rec.Matches) != 1 || rec.Matches[0] != "ice" {
		t.Errorf("unexpected matches: %v", rec.Matches)
	}
	if rec.ChannelName != "Channel 100-22361" {
		t.Errorf("unexpected fallback label: %s", rec.ChannelName)
	}

	snap := stats.Snapshot()
	if snap.CallsProcessed != 1 || snap.KeywordsMatched != 1 {
		t.Errorf("unexpected stats: %+v", snap)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 stored record, got %d", store.Len())
	}
	if len(notified) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notified))
	}
}

func TestProcess_NoAudio(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, text: "should not run"}
	stats := &Stats{}
	p := NewProcessor(ProcessorConfig{
		Matcher:  keyword.NewMatcher([]string{"ice"}),
		Backends: backendManager(t, backend),
		Store:    NewStore(10),
		Stats:    stats,
	})

	call := testCall()
	call.AudioURL = ""
	rec := p.Process(context.Background(), call)

	if rec.Text != "" {
		t.Errorf("expected empty text, got %q", rec.Text)
	}
	if len(rec.Matches) != 0 || rec.Matches == nil {
		t.Errorf("expected empty non-nil matches, got %v", rec.Matches)
	}
	if backend.calls != 0 {
		t.Error("backend must not be called without audio")
	}
	if stats.Snapshot().CallsProcessed != 1 {
		t.Error("callsProcessed must still increment")
	}
}

func TestProcess_NoSpeech(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, err: transcription.ErrNoSpeech}
	p := NewProcessor(ProcessorConfig{
		Matcher:  keyword.NewMatcher([]string{"ice"}),
		Backends: backendManager(t, backend),
		Store:    NewStore(10),
		Stats:    &Stats{},
	})

	rec := p.Process(context.Background(), testCall())
	if !rec.NoSpeech {
		t.Error("expected NoSpeech flag")
	}
	if rec.Text != "" || len(rec.Matches) != 0 {
		t.Errorf("expected empty text and matches, got %q %v", rec.Text, rec.Matches)
	}
}

func TestProcess_BackendFailureAnnotatesRecord(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, err: errors.New("boom")}
	stats := &Stats{}
	p := NewProcessor(ProcessorConfig{
		Matcher:  keyword.NewMatcher([]string{"boom"}),
		Backends: backendManager(t, backend),
		Store:    NewStore(10),
		Stats:    stats,
	})

	rec := p.Process(context.Background(), testCall())
	if !strings.HasPrefix(rec.Text, "[transcription failed") {
		t.Errorf("expected failure annotation, got %q", rec.Text)
	}
	if len(rec.Matches) != 0 {
		t.Errorf("failure text must not be scanned, got %v", rec.Matches)
	}
	if stats.Snapshot().CallsProcessed != 1 {
		t.Error("callsProcessed must still increment")
	}
}

func TestProcess_PlaceholderWithoutBackends(t *testing.T) {
	p := NewProcessor(ProcessorConfig{
		Matcher: keyword.NewMatcher([]string{"ice"}),
		Store:   NewStore(10),
		Stats:   &Stats{},
	})

	rec := p.Process(context.Background(), testCall())
	if rec.Text != transcription.PlaceholderTranscript {
		t.Errorf("expected placeholder transcript, got %q", rec.Text)
	}
}

func TestProcess_PlaceholderWhenNoBackendAvailable(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: false}
	p := NewProcessor(ProcessorConfig{
		Matcher:  keyword.NewMatcher([]string{"ice"}),
		Backends: backendManager(t, backend),
		Store:    NewStore(10),
		Stats:    &Stats{},
	})

	rec := p.Process(context.Background(), testCall())
	if rec.Text != transcription.PlaceholderTranscript {
		t.Errorf("expected placeholder transcript, got %q", rec.Text)
	}
	if backend.calls != 0 {
		t.Error("unavailable backend must not be called")
	}
}

func TestProcess_MinDurationSkipsTranscription(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, text: "should not run"}
	store := NewStore(10)
	p := NewProcessor(ProcessorConfig{
		Matcher:         keyword.NewMatcher([]string{"ice"}),
		Backends:        backendManager(t, backend),
		Store:           store,
		Stats:           &Stats{},
		MinCallDuration: 2,
	})

	call := testCall()
	call.Duration = 1
	rec := p.Process(context.Background(), call)

	if backend.calls != 0 {
		t.Error("short call must not be transcribed")
	}
	if rec.Text != "" {
		t.Errorf("expected empty text, got %q", rec.Text)
	}
	if store.Len() != 1 {
		t.Error("short call must still be stored")
	}
}

func TestProcess_NotifierFailureTolerated(t *testing.T) {
	backend := &fakeBackend{name: "fake", available: true, text: "ice"}
	p := NewProcessor(ProcessorConfig{
		Matcher:  keyword.NewMatcher([]string{"ice"}),
		Backends: backendManager(t, backend),
		Store:    NewStore(10),
		Stats:    &Stats{},
		Notifier: NotifierFunc(func(ctx context.Context, rec TranscriptRecord) error {
			return errors.New("smtp down")
		}),
	})

	rec := p.Process(context.Background(), testCall())
	if len(rec.Matches) != 1 {
		t.Errorf("record must still carry matches, got %v", rec.Matches)
	}
}

func TestProcess_DirectoryLabel(t *testing.T) {
	d := NewDirectory()
	d.Put("100-22361", "Police Dispatch")
	p := NewProcessor(ProcessorConfig{
		Directory: d,
		Matcher:   keyword.NewMatcher(nil),
		Store:     NewStore(10),
		Stats:     &Stats{},
	})

	rec := p.Process(context.Background(), testCall())
	if rec.ChannelName != "Police Dispatch" {
		t.Errorf("unexpected label: %s", rec.ChannelName)
	}
}
