// Package deepgram implements a transcription backend against the Deepgram
// hosted speech-to-text API. Audio is submitted by reference: the recording
// URL goes in the request body and Deepgram fetches it server-side, so no
// local download is needed.
package deepgram

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/skillsenselab/radiowatch/errors"
	"github.com/skillsenselab/radiowatch/httpclient"
	"github.com/skillsenselab/radiowatch/provider"
	"github.com/skillsenselab/radiowatch/transcription"
)

const (
	// ProviderName is the registered name for the Deepgram backend.
	ProviderName = "deepgram"

	defaultBaseURL = "https://api.deepgram.com"
	defaultModel   = "nova-2"
	defaultTimeout = 60 * time.Second
)

// Config holds configuration for the Deepgram transcription backend.
type Config struct {
	APIKey   string        `json:"api_key" yaml:"api_key" mapstructure:"api_key"`
	BaseURL  string        `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	Model    string        `json:"model" yaml:"model" mapstructure:"model"`
	Language string        `json:"language,omitempty" yaml:"language" mapstructure:"language"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Provider implements transcription.Provider using the Deepgram API.
type Provider struct {
	cfg  Config
	http *httpclient.Client
}

// NewProvider creates a new Deepgram transcription backend.
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

	client, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth: httpclient.CustomAuth(func(req *http.Request) {
			req.Header.Set("Authorization", "Token "+cfg.APIKey)
		}),
	})
	if err != nil {
		return nil, err
	}

	return &Provider{cfg: cfg, http: client}, nil
}

// Factory returns a provider.Factory that creates Deepgram backends from a
// generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		dc := Config{}
		if v, ok := cfg["api_key"].(string); ok {
			dc.APIKey = v
		}
		if v, ok := cfg["base_url"].(string); ok {
			dc.BaseURL = v
		}
		if v, ok := cfg["model"].(string); ok {
			dc.Model = v
		}
		if v, ok := cfg["language"].(string); ok {
			dc.Language = v
		}
		dc.Timeout = timeoutValue(cfg["timeout"])
		return NewProvider(dc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the backend is configured with an API key.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return p.cfg.APIKey != ""
}

// Transcribe submits the audio URL to Deepgram and returns the transcript.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	if req.AudioURL == "" {
		return nil, errors.InvalidInput("audioURL", "is required")
	}

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	query := map[string]string{
		"model":        model,
		"smart_format": "true",
	}
	if lang := firstNonEmpty(req.Language, p.cfg.Language); lang != "" {
		query["language"] = lang
	}

	resp, err := p.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v1/listen",
		Query:  query,
		Body:   map[string]string{"url": req.AudioURL},
	})
	if err != nil {
		return nil, errors.TranscriptionProvider(ProviderName, err)
	}

	var body listenResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, errors.TranscriptionProvider(ProviderName, err)
	}

	text := strings.TrimSpace(body.transcript())
	if text == "" {
		return nil, transcription.ErrNoSpeech
	}

	return &transcription.Result{
		Text:     text,
		Duration: body.Metadata.Duration,
	}, nil
}

// --- internal Deepgram API response types ---

type listenResponse struct {
	Metadata struct {
		Duration float64 `json:"duration"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

func (r *listenResponse) transcript() string {
	if len(r.Results.Channels) == 0 || len(r.Results.Channels[0].Alternatives) == 0 {
		return ""
	}
	return r.Results.Channels[0].Alternatives[0].Transcript
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
