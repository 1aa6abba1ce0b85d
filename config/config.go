package config

import (
	"github.com/skillsenselab/radiowatch/broadcastify"
	"github.com/skillsenselab/radiowatch/logger"
	"github.com/skillsenselab/radiowatch/monitor"
)

// DefaultKeywords is the alert list used when none is configured.
var DefaultKeywords = []string{
	"ice", "immigration", "federal", "detain",
	"dpss", "gunshot", "shots fired", "officer down",
}

// Config is the full configuration tree for the service.
type Config struct {
	Logger        logger.Config       `yaml:"logger" mapstructure:"logger"`
	Broadcastify  broadcastify.Config `yaml:"broadcastify" mapstructure:"broadcastify"`
	Monitor       MonitorConfig       `yaml:"monitor" mapstructure:"monitor"`
	Transcription TranscriptionConfig `yaml:"transcription" mapstructure:"transcription"`
}

// MonitorConfig configures the polling pipeline.
type MonitorConfig struct {
	// Worker tunes the polling loop intervals and backoff.
	Worker monitor.WorkerConfig `yaml:"worker" mapstructure:"worker"`
	// MinCallDuration skips transcription for calls shorter than this many
	// seconds. Defaults to 2; a negative value disables the filter.
	MinCallDuration float64 `yaml:"min_call_duration" mapstructure:"min_call_duration"`
	// StoreCapacity bounds the in-memory transcript store. Defaults to 100.
	StoreCapacity int `yaml:"store_capacity" mapstructure:"store_capacity"`
	// Keywords is the alert list. Defaults to DefaultKeywords.
	Keywords []string `yaml:"keywords" mapstructure:"keywords"`
	// Channels are the channel (talkgroup) references to poll.
	Channels []string `yaml:"channels" mapstructure:"channels"`
	// Labels maps channel references to display names, supplementing
	// discovered ones.
	Labels map[string]string `yaml:"labels" mapstructure:"labels"`
	// Language is passed to transcription backends.
	Language string `yaml:"language" mapstructure:"language"`
	// CountyID seeds channel discovery when set.
	CountyID string `yaml:"county_id" mapstructure:"county_id"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *MonitorConfig) ApplyDefaults() {
	c.Worker.ApplyDefaults()
	if c.MinCallDuration == 0 {
		c.MinCallDuration = 2
	}
	if c.StoreCapacity <= 0 {
		c.StoreCapacity = monitor.DefaultStoreCapacity
	}
	if len(c.Keywords) == 0 {
		c.Keywords = append([]string(nil), DefaultKeywords...)
	}
}

// TranscriptionConfig configures the transcription backends.
type TranscriptionConfig struct {
	// Priority is the backend preference order; the first available wins.
	Priority []string `yaml:"priority" mapstructure:"priority"`
	// Providers holds per-backend settings keyed by provider name.
	Providers map[string]map[string]any `yaml:"providers" mapstructure:"providers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	c.Logger.ApplyDefaults()
	c.Broadcastify.ApplyDefaults()
	c.Monitor.ApplyDefaults()
}

// Validate checks the full tree. Credential validation is included, so call
// this only on paths that talk to the upstream API.
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Broadcastify.Validate()
}
