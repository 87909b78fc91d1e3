// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	apistatsstore "github.com/dalemusser/fairway/internal/app/store/apistats"
	"github.com/dalemusser/fairway/internal/app/store/audit"
	"github.com/dalemusser/fairway/internal/app/store/ratelimit"
	sessionstore "github.com/dalemusser/fairway/internal/app/store/sessions"
	"go.uber.org/zap"
)

// ExpiredSessionCleanupJob sweeps sessions past their expiry. The TTL index
// on user_sessions does the real enforcement; this reclaims storage when
// the TTL monitor lags (or on DocumentDB-style backends without one).
func ExpiredSessionCleanupJob(store *sessionstore.Store, logger *zap.Logger) Job {
	return Job{
		Name:     "expired_session_cleanup",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			n, err := store.DeleteExpired(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Info("removed expired sessions", zap.Int64("count", n))
			}
			return nil
		},
	}
}

// RateLimitCleanupJob drops auth throttle records idle for a day.
func RateLimitCleanupJob(store *ratelimit.Store, logger *zap.Logger) Job {
	return Job{
		Name:     "rate_limit_cleanup",
		Interval: 6 * time.Hour,
		Run: func(ctx context.Context) error {
			n, err := store.DeleteStale(ctx, 24*time.Hour)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Info("removed stale rate limit records", zap.Int64("count", n))
			}
			return nil
		},
	}
}

// APIStatsCleanupJob enforces the stats retention window.
func APIStatsCleanupJob(store *apistatsstore.Store, retention time.Duration, logger *zap.Logger) Job {
	return Job{
		Name:     "api_stats_cleanup",
		Interval: 12 * time.Hour,
		Run: func(ctx context.Context) error {
			cutoff := time.Now().UTC().Add(-retention)
			n, err := store.DeleteOlderThan(ctx, cutoff)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Info("removed old api stats buckets", zap.Int64("count", n))
			}
			return nil
		},
	}
}

// AuditLogCleanupJob enforces the audit retention window.
func AuditLogCleanupJob(store *audit.Store, retention time.Duration, logger *zap.Logger) Job {
	return Job{
		Name:     "audit_log_cleanup",
		Interval: 24 * time.Hour,
		Run: func(ctx context.Context) error {
			cutoff := time.Now().UTC().Add(-retention)
			n, err := store.DeleteOlderThan(ctx, cutoff)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Info("removed old audit events", zap.Int64("count", n))
			}
			return nil
		},
	}
}
