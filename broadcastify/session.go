package broadcastify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/skillsenselab/radiowatch/errors"
	"github.com/skillsenselab/radiowatch/httpclient"
	"github.com/skillsenselab/radiowatch/logger"
)

const authPath = "/common/v1/auth"

// authResponse is the upstream login response body.
type authResponse struct {
	Token string      `json:"token"`
	UID   json.Number `json:"uid"`
}

// Authenticate exchanges the configured username and password for a fresh
// session identity, replacing any prior one. The login request itself is
// authorized with an application token without session binding.
func (c *Client) Authenticate(ctx context.Context) (*SessionIdentity, error) {
	creds, _ := c.snapshot()

	token, err := BuildToken(creds, nil, false)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   authPath,
		Body: url.Values{
			"username": {creds.Username},
			"password": {creds.Password},
		},
		Auth: httpclient.BearerAuth(token),
	})
	if err != nil {
		if status := httpclient.StatusOf(err); status > 0 {
			return nil, errors.Authentication(status).WithCause(err)
		}
		return nil, errors.TransientNetwork("authenticate", err)
	}

	var body authResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, errors.DataShape("auth response").WithCause(err)
	}
	if body.Token == "" {
		return nil, errors.DataShape("auth response missing token")
	}
	uid, err := body.UID.Int64()
	if err != nil {
		return nil, errors.DataShape("auth response uid").WithCause(err)
	}

	session := &SessionIdentity{
		UserID:   int(uid),
		Token:    body.Token,
		IssuedAt: time.Now(),
	}
	c.setSession(session)
	c.log.Info("authenticated", logger.Fields("uid", session.UserID))
	return session, nil
}

// ensureSession returns the cached session or authenticates to create one.
func (c *Client) ensureSession(ctx context.Context) (*SessionIdentity, error) {
	if _, session := c.snapshot(); session != nil {
		return session, nil
	}
	return c.Authenticate(ctx)
}
