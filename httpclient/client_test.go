package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/skillsenselab/radiowatch/resilience"
)

func TestClient_Do_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/calls/v1/live" {
			t.Errorf("expected /calls/v1/live, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("pos"); got != "2000" {
			t.Errorf("expected pos=2000, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"calls": []any{}})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/calls/v1/live",
		Query:  map[string]string{"pos": "2000"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("expected success, got %d", resp.StatusCode)
	}
}

func TestClient_Do_FormEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("expected form content type, got %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("username") != "alice" {
			t.Errorf("expected username=alice, got %s", r.PostForm.Get("username"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/auth",
		Body:   url.Values{"username": {"alice"}, "password": {"secret"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_BearerAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("expected Bearer tok123, got %s", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/",
		Auth:   BearerAuth("tok123"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("expected model=whisper-1, got %s", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "call.mp3" {
			t.Errorf("expected call.mp3, got %s", hdr.Filename)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/transcribe",
		Body: &MultipartBody{
			Fields: map[string]string{"model": "whisper-1"},
			Files: []FileField{{
				FieldName:   "file",
				FileName:    "call.mp3",
				ContentType: "audio/mpeg",
				Data:        []byte("fake audio bytes"),
			}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_ClassifiesErrors(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{401, IsAuth, "auth"},
		{500, func(err error) bool { return IsRetryable(err) }, "server retryable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c, _ := New(Config{BaseURL: srv.URL})
			resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("error not classified as %s: %v", tt.name, err)
			}
			if resp == nil || resp.StatusCode != tt.status {
				t.Errorf("expected response with status %d alongside error", tt.status)
			}
			if StatusOf(err) != tt.status {
				t.Errorf("expected StatusOf=%d, got %d", tt.status, StatusOf(err))
			}
		})
	}
}

func TestClient_Do_RetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	retry := resilience.DefaultRetryConfig()
	retry.RetryIf = IsRetryable
	retry.InitialBackoff = 1

	c, _ := New(Config{BaseURL: srv.URL, Retry: &retry})
	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("expected success after retries, got %d", resp.StatusCode)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestClient_BaseURLJoining(t *testing.T) {
	c, _ := New(Config{BaseURL: "http://example.com/api/"})
	req, err := c.buildRequest(context.Background(), Request{Method: http.MethodGet, Path: "/v1/x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL.String() != "http://example.com/api/v1/x" {
		t.Errorf("unexpected URL: %s", req.URL)
	}

	// Absolute paths bypass the base URL.
	req, _ = c.buildRequest(context.Background(), Request{Method: http.MethodGet, Path: "http://other/a.mp3"})
	if !strings.HasPrefix(req.URL.String(), "http://other/") {
		t.Errorf("expected absolute URL preserved, got %s", req.URL)
	}
}
