package monitor

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptRecord is the processed form of one recorded call.
type TranscriptRecord struct {
	// ID uniquely identifies this record.
	ID uuid.UUID `json:"id"`
	// ChannelRef is the channel (talkgroup) reference the call arrived on.
	ChannelRef string `json:"channel_ref"`
	// ChannelName is the human-readable channel label.
	ChannelName string `json:"channel_name"`
	// OccurredAt is the call start time.
	OccurredAt time.Time `json:"occurred_at"`
	// Duration is the call length in seconds.
	Duration float64 `json:"duration"`
	// AudioURL points at the recorded audio, when available.
	AudioURL string `json:"audio_url,omitempty"`
	// Text is the transcription, a placeholder, or a failure annotation.
	Text string `json:"text"`
	// NoSpeech marks audio that contained no recognizable speech.
	NoSpeech bool `json:"no_speech,omitempty"`
	// Matches are the alert keywords found in Text, in configured order.
	Matches []string `json:"matches"`
}
