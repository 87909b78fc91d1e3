// internal/app/system/auditlog/logger.go

// Package auditlog records security-relevant events (session exchanges,
// logouts, moderation decisions, admin content changes) to the audit store
// and the application log.
package auditlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/fairway/internal/app/store/audit"
	"github.com/dalemusser/fairway/internal/app/system/network"
	"go.uber.org/zap"
)

// Logger writes audit events. A nil Logger is safe to call; every method
// becomes a no-op, so handlers never need to guard their audit calls.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
}

// New creates an audit logger.
func New(store *audit.Store, zapLog *zap.Logger) *Logger {
	return &Logger{store: store, zapLog: zapLog}
}

// Log records an event to both sinks. Store failures are logged and
// swallowed; auditing must never fail a request.
func (l *Logger) Log(ctx context.Context, e audit.Event) {
	if l == nil {
		return
	}

	fields := []zap.Field{
		zap.String("category", e.Category),
		zap.String("event_type", e.EventType),
		zap.Bool("success", e.Success),
	}
	if e.UserID != nil {
		fields = append(fields, zap.String("user_id", *e.UserID))
	}
	if e.IP != "" {
		fields = append(fields, zap.String("ip", e.IP))
	}
	if e.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", e.FailureReason))
	}
	l.zapLog.Info("audit event", fields...)

	if l.store != nil {
		if err := l.store.Log(ctx, e); err != nil {
			l.zapLog.Error("failed to write audit event",
				zap.String("event_type", e.EventType),
				zap.Error(err))
		}
	}
}

func requestEvent(r *http.Request, category, eventType string, success bool) audit.Event {
	return audit.Event{
		Category:  category,
		EventType: eventType,
		IP:        network.GetClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   success,
	}
}

// SessionExchangeSucceeded records a successful identity-provider exchange.
func (l *Logger) SessionExchangeSucceeded(ctx context.Context, r *http.Request, userID string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventSessionExchangeSuccess, true)
	e.UserID = &userID
	l.Log(ctx, e)
}

// SessionExchangeFailed records a rejected or errored exchange.
func (l *Logger) SessionExchangeFailed(ctx context.Context, r *http.Request, reason string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventSessionExchangeFailure, false)
	e.FailureReason = reason
	l.Log(ctx, e)
}

// Logout records a logout. userID may be empty when the token was already
// dead.
func (l *Logger) Logout(ctx context.Context, r *http.Request, userID string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLogout, true)
	if userID != "" {
		e.UserID = &userID
	}
	l.Log(ctx, e)
}

// ReviewSubmitted records a new pending review.
func (l *Logger) ReviewSubmitted(ctx context.Context, r *http.Request, userID, reviewID string) {
	e := requestEvent(r, audit.CategoryModeration, audit.EventReviewSubmitted, true)
	e.UserID = &userID
	e.Details = map[string]string{"review_id": reviewID}
	l.Log(ctx, e)
}

// ReviewModerated records an approve or reject decision.
func (l *Logger) ReviewModerated(ctx context.Context, r *http.Request, reviewID, decision string) {
	eventType := audit.EventReviewApproved
	if decision == "rejected" {
		eventType = audit.EventReviewRejected
	}
	e := requestEvent(r, audit.CategoryModeration, eventType, true)
	e.Details = map[string]string{"review_id": reviewID}
	l.Log(ctx, e)
}

// ContentChanged records an admin create/update/delete on a content entity.
func (l *Logger) ContentChanged(ctx context.Context, r *http.Request, eventType, entity, id string) {
	e := requestEvent(r, audit.CategoryContent, eventType, true)
	e.Details = map[string]string{"entity": entity, "id": id}
	l.Log(ctx, e)
}
