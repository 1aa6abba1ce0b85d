package broadcastify

import (
	"time"

	"github.com/skillsenselab/radiowatch/validation"
)

const (
	defaultBaseURL = "https://api.bcfy.io"
	defaultTimeout = 30 * time.Second
)

// Credentials identify the application and user against the upstream API.
// Immutable for a session; owned by configuration.
type Credentials struct {
	// APIKey is the shared secret used to sign tokens.
	APIKey string `yaml:"api_key" mapstructure:"api_key" validate:"required"`
	// KeyID is placed in the token header as the key identifier.
	KeyID string `yaml:"api_key_id" mapstructure:"api_key_id" validate:"required"`
	// AppID is the issuer claim of every token.
	AppID string `yaml:"app_id" mapstructure:"app_id" validate:"required"`
	// Username and Password authenticate the user session.
	Username string `yaml:"username" mapstructure:"username" validate:"required"`
	Password string `yaml:"password" mapstructure:"password" validate:"required"`
}

// Validate checks that all credential fields are present.
func (c Credentials) Validate() error {
	return validation.Validate(c)
}

// Config configures the upstream API client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout bounds every request so a hung call cannot stall shutdown.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// Credentials identify the application and user.
	Credentials Credentials `yaml:"credentials" mapstructure:"credentials"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks the configuration, credentials included.
func (c *Config) Validate() error {
	return c.Credentials.Validate()
}
