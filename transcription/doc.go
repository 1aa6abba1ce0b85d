// Package transcription defines the provider interface and common types
// for turning recorded call audio into text.
//
// It follows the generic provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Backends
//
//   - transcription/deepgram: Deepgram hosted speech-to-text (direct URL submit)
//   - transcription/openai: OpenAI audio transcription (download + upload)
//   - transcription/whisper: local faster-whisper HTTP sidecar
//
// # Usage
//
//	mgr := transcription.NewManager(transcription.WithPriority("deepgram", "whisper"))
//	mgr.Register(deepgram.ProviderName, deepgram.Factory())
//	backend, err := mgr.Get(ctx)
//	result, err := backend.Transcribe(ctx, req)
package transcription
