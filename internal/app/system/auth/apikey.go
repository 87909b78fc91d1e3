// internal/app/system/auth/apikey.go
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// APIKeyAuth returns middleware requiring "Authorization: Bearer <key>" to
// match validKey. Used on admin endpoints (content mutation, moderation,
// inquiry listing). An empty validKey rejects every request, so a missing
// config value fails closed.
func APIKeyAuth(validKey string, logger *zap.Logger) func(http.Handler) http.Handler {
	if validKey == "" {
		logger.Warn("admin API key is not configured; admin endpoints will reject all requests")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validKey == "" {
				http.Error(w, "admin access not configured", http.StatusUnauthorized)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Debug("admin request missing Authorization header",
					zap.String("path", r.URL.Path))
				http.Error(w, "missing authorization", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "invalid authorization format", http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(validKey)) != 1 {
				logger.Warn("admin request with invalid API key",
					zap.String("path", r.URL.Path))
				http.Error(w, "invalid API key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
