package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/skillsenselab/radiowatch/broadcastify"
	"github.com/skillsenselab/radiowatch/errors"
	"github.com/skillsenselab/radiowatch/logger"
	"github.com/skillsenselab/radiowatch/resilience"
)

// State is the worker lifecycle state.
type State int32

const (
	// StateStopped means no polling goroutine is running.
	StateStopped State = iota
	// StateRunning means the polling loop is active.
	StateRunning
)

// String returns the state name.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// FeedClient fetches new calls for a channel set since a cursor.
type FeedClient interface {
	FetchCalls(ctx context.Context, channels []string, cursor broadcastify.Cursor) (*broadcastify.FetchResult, error)
}

// CallHandler processes one fetched call.
type CallHandler interface {
	Process(ctx context.Context, call broadcastify.CallRecord) TranscriptRecord
}

// WorkerConfig tunes the polling loop.
type WorkerConfig struct {
	// PollInterval is the pause between successful polls. Defaults to 5s.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`
	// IdleInterval is the pause when the channel set is empty. Defaults to 1s.
	IdleInterval time.Duration `yaml:"idle_interval" mapstructure:"idle_interval"`
	// BackoffInitial is the first error backoff delay. Defaults to 2s.
	BackoffInitial time.Duration `yaml:"backoff_initial" mapstructure:"backoff_initial"`
	// BackoffMax caps the error backoff. Defaults to 60s.
	BackoffMax time.Duration `yaml:"backoff_max" mapstructure:"backoff_max"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *WorkerConfig) ApplyDefaults() {
	if c.PollInterval <= 0 {
		c.PollInterval = 5 * time.Second
	}
	if c.IdleInterval <= 0 {
		c.IdleInterval = time.Second
	}
	if c.BackoffInitial <= 0 {
		c.BackoffInitial = 2 * time.Second
	}
	if c.BackoffMax <= 0 {
		c.BackoffMax = 60 * time.Second
	}
}

// Worker runs the polling loop on its own goroutine. It moves between
// Stopped and Running; Stop cancels the loop's context, which is observed
// between polls and between calls within a batch. Only Stop ends the loop;
// fetch and auth failures trigger exponential backoff instead.
type Worker struct {
	cfg      WorkerConfig
	feed     FeedClient
	handler  CallHandler
	channels *ChannelSet
	stats    *Stats
	log      *logger.Logger

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
	cursor broadcastify.Cursor
}

// NewWorker creates a Worker. The channel set may start empty and be filled
// later via SetChannels, but Start requires at least one channel.
func NewWorker(cfg WorkerConfig, feed FeedClient, handler CallHandler, channels *ChannelSet, stats *Stats) *Worker {
	cfg.ApplyDefaults()
	if channels == nil {
		channels = NewChannelSet()
	}
	if stats == nil {
		stats = &Stats{}
	}
	return &Worker{
		cfg:      cfg,
		feed:     feed,
		handler:  handler,
		channels: channels,
		stats:    stats,
		log:      logger.WithComponent("worker"),
	}
}

// Start launches the polling loop. Starting a running worker is a logged
// no-op. An empty channel set is a configuration error.
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == StateRunning {
		w.log.Warn("start ignored, already running")
		return nil
	}
	if w.channels.Len() == 0 {
		return errors.Configuration("cannot start monitoring without channels")
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	w.state = StateRunning
	w.log.Info("monitoring started", logger.Fields("channels", w.channels.Len()))

	go w.run(ctx, w.done)
	return nil
}

// Stop cancels the polling loop. Stopping a stopped worker is a no-op. The
// state flips to Stopped when the goroutine exits; wait on Done for that.
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateRunning {
		return
	}
	w.log.Info("monitoring stopping")
	w.cancel()
}

// Done returns a channel closed when the polling goroutine has exited.
// A never-started worker returns an already-closed channel.
func (w *Worker) Done() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return w.done
}

// State returns the current lifecycle state.
func (w *Worker) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Cursor returns the current feed position.
func (w *Worker) Cursor() broadcastify.Cursor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

// SetChannels replaces the polled channel set. Takes effect on the next poll.
func (w *Worker) SetChannels(refs []string) {
	w.channels.Set(refs)
}

func (w *Worker) run(ctx context.Context, done chan struct{}) {
	defer func() {
		w.mu.Lock()
		w.state = StateStopped
		w.mu.Unlock()
		close(done)
		w.log.Info("monitoring stopped")
	}()

	backoff := resilience.NewBackoff(w.cfg.BackoffInitial, w.cfg.BackoffMax, 2)

	for {
		if ctx.Err() != nil {
			return
		}

		refs := w.channels.Refs()
		if len(refs) == 0 {
			if !w.sleep(ctx, w.cfg.IdleInterval) {
				return
			}
			continue
		}

		result, err := w.feed.FetchCalls(ctx, refs, w.Cursor())
		if err != nil {
			delay := backoff.Next()
			w.log.Error("fetch failed, backing off", logger.Fields(
				logger.FieldError, err.Error(),
				"delay", delay.String(),
			))
			if !w.sleep(ctx, delay) {
				return
			}
			continue
		}
		if result.AuthFailed {
			delay := backoff.Next()
			w.log.Warn("authentication failed, backing off", logger.Fields("delay", delay.String()))
			if !w.sleep(ctx, delay) {
				return
			}
			continue
		}
		backoff.Reset()
		w.setCursor(result.Cursor)

		for _, call := range result.Calls {
			if ctx.Err() != nil {
				return
			}
			w.stats.CallReceived()
			w.handler.Process(ctx, call)
		}

		if !w.sleep(ctx, w.cfg.PollInterval) {
			return
		}
	}
}

// sleep pauses for d, returning false if the context is cancelled first.
func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (w *Worker) setCursor(cursor broadcastify.Cursor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cursor = cursor
}
