package broadcastify

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skillsenselab/radiowatch/errors"
)

// tokenTTL is the advisory expiry stamped into every token. Tokens are minted
// fresh per request, so the caller never tracks this against the clock.
const tokenTTL = time.Hour

// apiClaims is the payload claim set of an upstream API token.
type apiClaims struct {
	jwt.RegisteredClaims
	// UserToken binds the token to an authenticated user session.
	UserToken string `json:"utk,omitempty"`
}

// BuildToken mints a fresh HMAC-SHA256 signed token for the upstream API.
// The key identifier rides in the header; issuer, issue time, and expiry in
// the payload. When includeSession is true and a session is present, the
// token is additionally bound to the user via subject and session token
// claims.
func BuildToken(creds Credentials, session *SessionIdentity, includeSession bool) (string, error) {
	if creds.APIKey == "" || creds.KeyID == "" || creds.AppID == "" {
		return "", errors.Configuration("api_key, api_key_id, and app_id are required to sign tokens")
	}

	now := time.Now()
	claims := apiClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    creds.AppID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	if includeSession && session != nil {
		claims.Subject = strconv.Itoa(session.UserID)
		claims.UserToken = session.Token
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = creds.KeyID

	signed, err := token.SignedString([]byte(creds.APIKey))
	if err != nil {
		return "", errors.Configuration("failed to sign API token").WithCause(err)
	}
	return signed, nil
}
