package broadcastify

import (
	"sync"

	"github.com/skillsenselab/radiowatch/httpclient"
	"github.com/skillsenselab/radiowatch/logger"
)

// Client talks to the upstream calls API. It is safe for concurrent use: the
// monitoring worker polls through it while the foreground may swap
// credentials; an in-flight poll always uses the credentials snapshot taken
// at its start.
type Client struct {
	http *httpclient.Client
	log  *logger.Logger

	mu      sync.Mutex
	creds   Credentials
	session *SessionIdentity
}

// NewClient creates a client for the upstream API.
func NewClient(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		http:  hc,
		log:   logger.WithComponent("broadcastify"),
		creds: cfg.Credentials,
	}, nil
}

// UpdateCredentials swaps the credentials used for subsequent requests and
// drops the cached session, forcing re-authentication on the next poll.
// An in-flight poll keeps using the snapshot it started with.
func (c *Client) UpdateCredentials(creds Credentials) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = creds
	c.session = nil
}

// snapshot returns the current credentials and session under the lock.
func (c *Client) snapshot() (Credentials, *SessionIdentity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creds, c.session
}

func (c *Client) setSession(s *SessionIdentity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

func (c *Client) clearSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
}
