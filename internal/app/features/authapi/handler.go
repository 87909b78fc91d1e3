// internal/app/features/authapi/handler.go

// Package authapi implements the session-exchange login flow: the frontend
// hands us an opaque session_id from the identity provider redirect, we
// exchange it for the user's profile, upsert the local user, and issue a
// session cookie.
package authapi

import (
	"errors"
	"net/http"

	"github.com/dalemusser/fairway/internal/app/store/ratelimit"
	sessionstore "github.com/dalemusser/fairway/internal/app/store/sessions"
	userstore "github.com/dalemusser/fairway/internal/app/store/users"
	"github.com/dalemusser/fairway/internal/app/system/auditlog"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/dalemusser/fairway/internal/app/system/identity"
	"github.com/dalemusser/fairway/internal/app/system/jsonutil"
	"github.com/dalemusser/fairway/internal/app/system/network"
	"go.uber.org/zap"
)

// Handler serves the auth endpoints.
type Handler struct {
	idp      *identity.Client
	users    *userstore.Store
	sessions *sessionstore.Store
	sm       *auth.Manager
	limiter  *ratelimit.Store
	audit    *auditlog.Logger
	logger   *zap.Logger
}

// NewHandler creates the auth handler. limiter may be nil to disable
// throttling of failed exchanges.
func NewHandler(idp *identity.Client, users *userstore.Store, sessions *sessionstore.Store, sm *auth.Manager, limiter *ratelimit.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		idp:      idp,
		users:    users,
		sessions: sessions,
		sm:       sm,
		limiter:  limiter,
		audit:    audit,
		logger:   logger,
	}
}

// StartSession handles POST /auth/session. It exchanges the session_id with
// the identity provider, upserts the user by email, replaces any existing
// sessions for that user with one fresh session, and sets the cookie.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := jsonutil.Decode(r, &req); err != nil || req.SessionID == "" {
		jsonutil.BadRequest(w, "session_id is required")
		return
	}

	ctx := r.Context()
	clientIP := network.GetClientIP(r)

	if h.limiter != nil {
		if allowed, _ := h.limiter.CheckAllowed(ctx, clientIP); !allowed {
			jsonutil.Error(w, http.StatusTooManyRequests, "too many failed attempts, try again later")
			return
		}
	}

	data, err := h.idp.SessionData(ctx, req.SessionID)
	if err != nil {
		if h.limiter != nil {
			h.limiter.RecordFailure(ctx, clientIP)
		}
		h.audit.SessionExchangeFailed(ctx, r, err.Error())

		if errors.Is(err, identity.ErrSessionRejected) {
			jsonutil.Unauthorized(w, "invalid session")
			return
		}
		// Provider unreachable still reads as an auth failure to the
		// client; the session id could not be verified.
		h.logger.Error("identity provider exchange failed", zap.Error(err))
		jsonutil.Unauthorized(w, "invalid session")
		return
	}

	user, err := h.users.UpsertByEmail(ctx, data.Email, data.Name, data.Picture)
	if err != nil {
		h.logger.Error("failed to upsert user from session exchange",
			zap.String("email", data.Email),
			zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	token := data.SessionToken
	if token == "" {
		token, err = auth.GenerateSessionToken()
		if err != nil {
			h.logger.Error("failed to generate session token", zap.Error(err))
			jsonutil.InternalError(w, "internal error")
			return
		}
	}

	// One live session per user: clear old sessions before inserting the
	// new one. A failure between the two calls leaves the user logged out
	// everywhere rather than holding a half-written session.
	if _, err := h.sessions.DeleteByUser(ctx, user.ID); err != nil {
		h.logger.Error("failed to clear previous sessions",
			zap.String("user_id", user.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	if _, err := h.sessions.Create(ctx, user.ID, token, h.sm.TTL()); err != nil {
		h.logger.Error("failed to create session",
			zap.String("user_id", user.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	if h.limiter != nil {
		h.limiter.ClearOnSuccess(ctx, clientIP)
	}
	h.audit.SessionExchangeSucceeded(ctx, r, user.ID)

	h.sm.IssueCookie(w, token)
	jsonutil.OK(w, user)
}

// Me handles GET /auth/me. Requires a valid session.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		jsonutil.Unauthorized(w, "authentication required")
		return
	}
	jsonutil.OK(w, u)
}

// Logout handles POST /auth/logout. It deletes every session carrying the
// request's token and clears the cookie. Logging out with no live session
// still succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var userID string
	if u, ok := auth.CurrentUser(r); ok {
		userID = u.ID
	}

	if token := h.sm.TokenFromRequest(r); token != "" {
		if _, err := h.sessions.DeleteByToken(ctx, token); err != nil {
			h.logger.Error("failed to delete session on logout", zap.Error(err))
			jsonutil.InternalError(w, "internal error")
			return
		}
	}

	h.audit.Logout(ctx, r, userID)
	h.sm.ClearCookie(w)
	jsonutil.OK(w, map[string]string{"status": "logged out"})
}
