package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/skillsenselab/radiowatch/transcription"
)

// audioServer serves fake audio bytes for the download step.
func audioServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake mp3 bytes"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTranscribe_UploadsDownloadedAudio(t *testing.T) {
	audio := audioServer(t)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header: %s", got)
		}
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("body must be multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("unexpected model field: %s", got)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file field: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if string(data) != "fake mp3 bytes" {
			t.Errorf("uploaded bytes differ from downloaded audio: %q", data)
		}

		fmt.Fprint(w, `{"text": "engine five on scene"}`)
	}))
	defer api.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: api.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := p.Transcribe(context.Background(), transcription.Request{AudioURL: audio.URL + "/1.mp3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "engine five on scene" {
		t.Errorf("unexpected text: %s", result.Text)
	}

	if n := tempFileCount(t); n != 0 {
		t.Errorf("expected temp audio files removed, found %d", n)
	}
}

func TestTranscribe_CleansUpOnProviderError(t *testing.T) {
	audio := audioServer(t)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer api.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: api.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := p.Transcribe(context.Background(), transcription.Request{AudioURL: audio.URL + "/1.mp3"}); err == nil {
		t.Fatal("expected error")
	}
	if n := tempFileCount(t); n != 0 {
		t.Errorf("expected temp audio files removed on error, found %d", n)
	}
}

func TestTranscribe_EmptyTextIsNoSpeech(t *testing.T) {
	audio := audioServer(t)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"text": ""}`)
	}))
	defer api.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: api.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = p.Transcribe(context.Background(), transcription.Request{AudioURL: audio.URL + "/1.mp3"})
	if !errors.Is(err, transcription.ErrNoSpeech) {
		t.Errorf("expected ErrNoSpeech, got %v", err)
	}
}

func tempFileCount(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(os.TempDir())
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), "radiowatch-call") {
			count++
		}
	}
	return count
}
