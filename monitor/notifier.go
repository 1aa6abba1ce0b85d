package monitor

import (
	"context"
	"strings"

	"github.com/skillsenselab/radiowatch/logger"
)

// Notifier receives transcript records whose text matched alert keywords.
// Implementations must tolerate being called from the worker goroutine;
// failures are logged by the caller and never stop the pipeline.
type Notifier interface {
	Notify(ctx context.Context, rec TranscriptRecord) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, rec TranscriptRecord) error

// Notify calls the wrapped function.
func (f NotifierFunc) Notify(ctx context.Context, rec TranscriptRecord) error {
	return f(ctx, rec)
}

// LogNotifier writes keyword alerts to the structured log. Email and other
// outbound transports stay external; this is the built-in sink.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.WithComponent("alerts")}
}

// Notify logs the alert with its matched keywords.
func (n *LogNotifier) Notify(ctx context.Context, rec TranscriptRecord) error {
	n.log.Warn("keyword alert", logger.Fields(
		logger.FieldCallID, rec.ID.String(),
		logger.FieldChannel, rec.ChannelName,
		"keywords", strings.Join(rec.Matches, ","),
		"text", rec.Text,
	))
	return nil
}
