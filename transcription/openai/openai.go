// Package openai implements a transcription backend against the OpenAI audio
// transcription API. The API only accepts file uploads, so the recording is
// downloaded to a temporary file first and removed again on every exit path.
package openai

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
	// ProviderName is the registered name for the OpenAI backend.
	ProviderName = "openai"

	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "whisper-1"
	defaultTimeout = 120 * time.Second
)

// Config holds configuration for the OpenAI transcription backend.
type Config struct {
	APIKey   string        `json:"api_key" yaml:"api_key" mapstructure:"api_key"`
	BaseURL  string        `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	Model    string        `json:"model" yaml:"model" mapstructure:"model"`
	Language string        `json:"language,omitempty" yaml:"language" mapstructure:"language"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Provider implements transcription.Provider using the OpenAI API.
type Provider struct {
	cfg      Config
	api      *httpclient.Client
	download *httpclient.Client
}

// NewProvider creates a new OpenAI transcription backend.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	api, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth:    httpclient.BearerAuth(cfg.APIKey),
	})
	if err != nil {
		return nil, err
	}
	download, err := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	if err != nil {
		return nil, err
	}

	return &Provider{cfg: cfg, api: api, download: download}, nil
}

// Factory returns a provider.Factory that creates OpenAI backends from a
// generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		oc := Config{}
		if v, ok := cfg["api_key"].(string); ok {
			oc.APIKey = v
		}
		if v, ok := cfg["base_url"].(string); ok {
			oc.BaseURL = v
		}
		if v, ok := cfg["model"].(string); ok {
			oc.Model = v
		}
		if v, ok := cfg["language"].(string); ok {
			oc.Language = v
		}
		oc.Timeout = timeoutValue(cfg["timeout"])
		return NewProvider(oc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the backend is configured with an API key.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return p.cfg.APIKey != ""
}

// Transcribe downloads the audio, uploads it to the OpenAI transcription
// endpoint and returns the transcript. The temporary file is removed before
// returning, success or not.
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

	resp, err := p.api.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v1/audio/transcriptions",
		Body: &httpclient.MultipartBody{
			Fields: fields,
			Files: []httpclient.FileField{{
				FieldName:   "file",
				FileName:    filepath.Base(path),
				ContentType: "audio/mpeg",
				Data:        audioData,
			}},
		},
	})
	if err != nil {
		return nil, errors.TranscriptionProvider(ProviderName, err)
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, errors.TranscriptionProvider(ProviderName, err)
	}

	text := strings.TrimSpace(body.Text)
	if text == "" {
		return nil, transcription.ErrNoSpeech
	}
	return &transcription.Result{Text: text}, nil
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
