package transcription

import "errors"

// ErrNoSpeech reports audio that contained no recognizable speech. Callers
// treat this as a normal outcome, not a provider failure.
var ErrNoSpeech = errors.New("no speech detected")

// PlaceholderTranscript is recorded in place of real text when no
// transcription backend is configured.
const PlaceholderTranscript = "[transcription unavailable]"

// Request holds parameters for transcribing one recorded call.
type Request struct {
	// AudioURL is the location of the recorded audio to transcribe.
	AudioURL string `json:"audio_url"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
	// Model overrides the backend's configured model.
	Model string `json:"model,omitempty"`
}

// Result holds the outcome of a transcription call.
type Result struct {
	// Text is the full transcription text.
	Text string `json:"text"`
	// Duration is the audio duration in seconds, when the backend reports it.
	Duration float64 `json:"duration,omitempty"`
}
