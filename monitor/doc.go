// Package monitor ties the feed, transcription and keyword scanning together
// into a continuously polling pipeline.
//
// The Worker polls the call feed on an interval, hands each new call to the
// Processor, and backs off exponentially on errors. The Processor transcribes
// the audio, scans the text for alert keywords, records a TranscriptRecord in
// the Store and raises matches through a Notifier. Stats counters expose the
// pipeline's health synchronously.
package monitor
