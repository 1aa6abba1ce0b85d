package transcription

import (
	"context"

	"github.com/skillsenselab/radiowatch/provider"
)

// Provider is the interface that transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe converts the referenced audio into text.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
