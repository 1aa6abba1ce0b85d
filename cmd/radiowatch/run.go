package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillsenselab/radiowatch/broadcastify"
	"github.com/skillsenselab/radiowatch/config"
	"github.com/skillsenselab/radiowatch/keyword"
	"github.com/skillsenselab/radiowatch/logger"
	"github.com/skillsenselab/radiowatch/monitor"
	"github.com/skillsenselab/radiowatch/provider"
	"github.com/skillsenselab/radiowatch/transcription"
	"github.com/skillsenselab/radiowatch/transcription/deepgram"
	"github.com/skillsenselab/radiowatch/transcription/openai"
	"github.com/skillsenselab/radiowatch/transcription/whisper"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start monitoring the configured channels",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if len(cfg.Monitor.Channels) == 0 && cfg.Monitor.CountyID == "" {
			return fmt.Errorf("no channels configured; set monitor.channels or monitor.county_id")
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client, err := broadcastify.NewClient(cfg.Broadcastify)
		if err != nil {
			return err
		}

		directory := monitor.NewDirectory()
		for ref, label := range cfg.Monitor.Labels {
			directory.Put(ref, label)
		}

		channels := monitor.NewChannelSet(cfg.Monitor.Channels...)
		if cfg.Monitor.CountyID != "" {
			groups, err := client.DiscoverGroups(ctx, cfg.Monitor.CountyID)
			if err != nil {
				return fmt.Errorf("discover channels for county %s: %w", cfg.Monitor.CountyID, err)
			}
			directory.Merge(groups)
			if channels.Len() == 0 {
				for _, g := range groups {
					channels.Add(g.ID)
				}
			}
		}

		stats := &monitor.Stats{}
		store := monitor.NewStore(cfg.Monitor.StoreCapacity)
		processor := monitor.NewProcessor(monitor.ProcessorConfig{
			Directory:       directory,
			Matcher:         keyword.NewMatcher(cfg.Monitor.Keywords),
			Backends:        buildBackends(cfg),
			Store:           store,
			Stats:           stats,
			Notifier:        monitor.NewLogNotifier(),
			MinCallDuration: cfg.Monitor.MinCallDuration,
			Language:        cfg.Monitor.Language,
		})

		worker := monitor.NewWorker(cfg.Monitor.Worker, client, processor, channels, stats)
		if err := worker.Start(); err != nil {
			return err
		}

		<-ctx.Done()
		worker.Stop()
		<-worker.Done()

		snap := stats.Snapshot()
		fmt.Fprintf(os.Stdout, "received %d calls, processed %d, %d keyword alerts\n",
			snap.CallsReceived, snap.CallsProcessed, snap.KeywordsMatched)
		return nil
	},
}

// buildBackends registers and initializes the configured transcription
// backends. Nil when none are configured, which degrades transcripts to a
// placeholder.
func buildBackends(cfg *config.Config) *provider.Manager[transcription.Provider] {
	if len(cfg.Transcription.Providers) == 0 {
		return nil
	}

	priority := cfg.Transcription.Priority
	if len(priority) == 0 {
		for name := range cfg.Transcription.Providers {
			priority = append(priority, name)
		}
	}

	mgr := transcription.NewManager(transcription.WithPriority(priority...))
	mgr.Register(deepgram.ProviderName, deepgram.Factory())
	mgr.Register(openai.ProviderName, openai.Factory())
	mgr.Register(whisper.ProviderName, whisper.Factory())

	log := logger.WithComponent("transcription")
	for name, settings := range cfg.Transcription.Providers {
		if err := mgr.Initialize(name, settings); err != nil {
			log.Warn("backend initialization failed", logger.ErrorFields(name, err))
		}
	}
	return mgr
}
