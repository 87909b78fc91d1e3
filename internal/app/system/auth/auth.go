// internal/app/system/auth/auth.go

// Package auth implements cookie/bearer session authentication backed by the
// user_sessions collection, plus the admin API key check used by management
// endpoints.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	sessionstore "github.com/dalemusser/fairway/internal/app/store/sessions"
	userstore "github.com/dalemusser/fairway/internal/app/store/users"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// SessionUser is the authenticated user attached to a request.
type SessionUser struct {
	ID      string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`

	// Token is the session token the request authenticated with.
	Token string `json:"-"`
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated user for the request, if any.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser attaches a user to the request context. Test helper.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// GenerateSessionToken returns a URL-safe random session token with 256 bits
// of entropy.
func GenerateSessionToken() (string, error) {
	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return "", errors.New("could not generate random session token")
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}

// Manager resolves session tokens to users and manages the session cookie.
type Manager struct {
	sessions   *sessionstore.Store
	users      *userstore.Store
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     *zap.Logger
}

// NewManager creates a session manager. secure controls the cookie Secure
// flag and should be true outside local development.
func NewManager(sessions *sessionstore.Store, users *userstore.Store, cookieName string, ttl time.Duration, secure bool, logger *zap.Logger) *Manager {
	return &Manager{
		sessions:   sessions,
		users:      users,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
		logger:     logger,
	}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// TokenFromRequest extracts the session token from the session cookie, or
// failing that from an Authorization: Bearer header. Returns "" when the
// request carries no token.
func (m *Manager) TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(m.cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IssueCookie sets the session cookie. SameSite=None allows the browser
// frontend on a different origin to send it with credentialed requests.
func (m *Manager) IssueCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// Resolve maps a session token to its user. A missing or expired session,
// or a session pointing at a deleted user, yields (nil, nil): the request
// is simply unauthenticated, never an error.
func (m *Manager) Resolve(ctx context.Context, token string) (*SessionUser, error) {
	if token == "" {
		return nil, nil
	}

	sess, err := m.sessions.GetByToken(ctx, token)
	if errors.Is(err, sessionstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u, err := m.users.GetByID(ctx, sess.UserID)
	if errors.Is(err, userstore.ErrNotFound) {
		m.logger.Warn("session references missing user",
			zap.String("user_id", sess.UserID))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &SessionUser{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Picture: u.Picture,
		Token:   token,
	}, nil
}

// LoadSessionUser resolves the request's session token and, when it maps to
// a live session, attaches the user to the request context. Requests with
// no token or a dead token pass through unauthenticated.
func (m *Manager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.TokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		u, err := m.Resolve(r.Context(), token)
		if err != nil {
			m.logger.Error("session lookup failed", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		if u != nil {
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser rejects unauthenticated requests with a 401 JSON error.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
