// internal/app/system/identity/client.go

// Package identity talks to the external identity provider that the login
// flow hands session identifiers off to. The provider exchanges an opaque
// session_id for the authenticated user's profile.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrSessionRejected is returned when the provider does not recognize the
// session id (any non-200 response, or a response without an email).
var ErrSessionRejected = errors.New("identity provider rejected session")

// SessionData is the profile returned by a successful exchange.
type SessionData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture,omitempty"`
	SessionToken string `json:"session_token,omitempty"`
}

// Client calls the identity provider's session-data endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a client for the provider at baseURL. Requests time out after
// ten seconds; the login path should not hang on a slow provider.
func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// SessionData exchanges sessionID for the user's profile. The session id
// travels in the X-Session-ID header, not the URL, to keep it out of
// provider access logs.
func (c *Client) SessionData(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/session-data", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("identity provider returned non-200",
			zap.Int("status", resp.StatusCode))
		return nil, ErrSessionRejected
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding identity provider response: %w", err)
	}
	if data.Email == "" {
		return nil, ErrSessionRejected
	}

	return &data, nil
}
