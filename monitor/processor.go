package monitor

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillsenselab/radiowatch/broadcastify"
	"github.com/skillsenselab/radiowatch/keyword"
	"github.com/skillsenselab/radiowatch/logger"
	"github.com/skillsenselab/radiowatch/provider"
	"github.com/skillsenselab/radiowatch/transcription"
)

// ProcessorConfig wires the processor's collaborators and tuning.
type ProcessorConfig struct {
	// Directory resolves channel labels. Nil means fallback labels only.
	Directory *Directory
	// Matcher scans transcripts for alert keywords. Required.
	Matcher *keyword.Matcher
	// Backends selects the transcription backend. Nil degrades every
	// transcript to the placeholder text.
	Backends *provider.Manager[transcription.Provider]
	// Store receives every processed record. Required.
	Store *Store
	// Stats receives counter updates. Required.
	Stats *Stats
	// Notifier receives records with keyword matches. Nil disables alerts.
	Notifier Notifier
	// MinCallDuration skips transcription for calls shorter than this many
	// seconds. Zero disables the filter.
	MinCallDuration float64
	// Language is passed to transcription backends.
	Language string
}

// Processor turns feed calls into transcript records: label, transcribe,
// scan, store, notify.
type Processor struct {
	cfg ProcessorConfig
	log *logger.Logger
}

// NewProcessor creates a Processor from its configuration.
func NewProcessor(cfg ProcessorConfig) *Processor {
	if cfg.Matcher == nil {
		cfg.Matcher = keyword.NewMatcher(nil)
	}
	if cfg.Store == nil {
		cfg.Store = NewStore(0)
	}
	if cfg.Stats == nil {
		cfg.Stats = &Stats{}
	}
	return &Processor{cfg: cfg, log: logger.WithComponent("processor")}
}

// Process handles one call end to end and returns the resulting record.
// Per-call failures are folded into the record; Process never returns an
// error, so one bad call cannot stall the batch.
func (p *Processor) Process(ctx context.Context, call broadcastify.CallRecord) TranscriptRecord {
	rec := TranscriptRecord{
		ID:          uuid.New(),
		ChannelRef:  call.Group,
		ChannelName: p.label(call.Group),
		OccurredAt:  call.ReceivedAt,
		Duration:    call.Duration,
		AudioURL:    call.AudioURL,
		Matches:     []string{},
	}

	switch {
	case call.AudioURL == "":
		// Nothing to transcribe or scan.

	case p.cfg.MinCallDuration > 0 && call.Duration > 0 && call.Duration < p.cfg.MinCallDuration:
		p.log.Debug("call below minimum duration, skipping transcription", logger.Fields(
			logger.FieldChannel, call.Group,
			"duration_sec", call.Duration,
		))

	default:
		text, noSpeech, err := p.transcribe(ctx, call)
		switch {
		case err != nil:
			rec.Text = fmt.Sprintf("[transcription failed: %v]", err)
			p.log.Error("transcription failed", logger.ErrorFields("transcribe", err))
		case noSpeech:
			rec.NoSpeech = true
		default:
			rec.Text = text
			rec.Matches = p.cfg.Matcher.Match(text)
		}
	}

	p.cfg.Stats.CallProcessed()
	if len(rec.Matches) > 0 {
		p.cfg.Stats.KeywordsMatched()
	}
	p.cfg.Store.Append(rec)

	if len(rec.Matches) > 0 && p.cfg.Notifier != nil {
		if err := p.cfg.Notifier.Notify(ctx, rec); err != nil {
			p.log.Warn("notifier failed", logger.ErrorFields("notify", err))
		}
	}

	return rec
}

// transcribe resolves a backend and runs it. No configured or available
// backend degrades to the placeholder transcript instead of failing.
func (p *Processor) transcribe(ctx context.Context, call broadcastify.CallRecord) (text string, noSpeech bool, err error) {
	if p.cfg.Backends == nil {
		return transcription.PlaceholderTranscript, false, nil
	}
	backend, err := p.cfg.Backends.Get(ctx)
	if err != nil {
		return transcription.PlaceholderTranscript, false, nil
	}

	result, err := backend.Transcribe(ctx, transcription.Request{
		AudioURL: call.AudioURL,
		Language: p.cfg.Language,
	})
	if stderrors.Is(err, transcription.ErrNoSpeech) {
		return "", true, nil
	}
	if err != nil {
		return "", false, err
	}
	return result.Text, false, nil
}

func (p *Processor) label(ref string) string {
	if p.cfg.Directory == nil {
		return fmt.Sprintf("Channel %s", ref)
	}
	return p.cfg.Directory.Label(ref)
}
