// Package whisper implements a transcription backend against a local
// faster-whisper HTTP sidecar. Like the OpenAI backend it uploads the audio,
// so recordings are fetched to a temporary file and removed afterwards.
package whisper

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skillsenselab/radiowatch/errors"
	"github.com/skillsenselab/radiowatch/httpclient"
	"github.com/skillsenselab/radiowatch/provider"
	"github.com/skillsenselab/radiowatch/transcription"
)

const (
	// ProviderName is the registered name for the Whisper sidecar backend.
	ProviderName = "whisper"

	defaultURL     = "http://localhost:8387"
	defaultModel   = "base"
	defaultTimeout = 120 * time.Second
)

// Config holds configuration for the Whisper sidecar backend.
type Config struct {
	URL      string        `json:"url" yaml:"url" mapstructure:"url"`
	Model    string        `json:"model" yaml:"model" mapstructure:"model"`
	Language string        `json:"language,omitempty" yaml:"language" mapstructure:"language"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Provider implements transcription.Provider using a faster-whisper sidecar.
type Provider struct {
	cfg      Config
	http     *httpclient.Client
	download *httpclient.Client
}

// NewProvider creates a new Whisper sidecar backend.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.URL == "" {
		cfg.URL = defaultURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	client, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.URL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	download, err := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	if err != nil {
		return nil, err
	}

	return &Provider{cfg: cfg, http: client, download: download}, nil
}

// Factory returns a provider.Factory that creates Whisper backends from a
// generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		wc := Config{}
		if v, ok := cfg["url"].(string); ok {
			wc.URL = v
		}
		if v, ok := cfg["model"].(string); ok {
			wc.Model = v
		}
		if v, ok := cfg["language"].(string); ok {
			wc.Language = v
		}
		wc.Timeout = timeoutValue(cfg["timeout"])
		return NewProvider(wc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks if the Whisper sidecar is reachable.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	resp, err := p.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
	return err == nil && resp.IsSuccess()
}

// Transcribe fetches the audio, uploads it to the sidecar and returns the
// transcript.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	path, cleanup, err := transcription.FetchAudio(ctx, p.download, req.AudioURL)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Internal(err)
	}

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	fields := map[string]string{"model": model}
	if lang := firstNonEmpty(req.Language, p.cfg.Language); lang != "" {
		fields["language"] = lang
	}

	resp, err := p.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/transcribe",
		Body: &httpclient.MultipartBody{
			Fields: fields,
			Files: []httpclient.FileField{{
				FieldName:   "audio",
				FileName:    filepath.Base(path),
				ContentType: "audio/mpeg",
				Data:        audioData,
			}},
		},
	})
	if err != nil {
		return nil, errors.TranscriptionProvider(ProviderName, err)
	}

	var body whisperResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, errors.TranscriptionProvider(ProviderName, err)
	}

	text := strings.TrimSpace(body.Text)
	if text == "" {
		return nil, transcription.ErrNoSpeech
	}

	return &transcription.Result{
		Text:     text,
		Duration: body.duration(),
	}, nil
}

// --- internal Whisper sidecar response types ---

type whisperResponse struct {
	Text     string           `json:"text"`
	Segments []whisperSegment `json:"segments"`
	Language string           `json:"language"`
}

type whisperSegment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (r *whisperResponse) duration() float64 {
	if len(r.Segments) == 0 {
		return 0
	}
	return r.Segments[len(r.Segments)-1].End
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func timeoutValue(v any) time.Duration {
	switch t := v.(type) {
	case time.Duration:
		return t
	case string:
		if d, err := time.ParseDuration(t); err == nil {
			return d
		}
	}
	return 0
}
