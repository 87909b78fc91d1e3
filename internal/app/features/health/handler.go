// internal/app/features/health/handler.go

// Package health exposes liveness and readiness probes. Readiness pings
// MongoDB; liveness only proves the process is serving requests.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/fairway/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// Handler serves health probe endpoints.
type Handler struct {
	client *mongo.Client
	logger *zap.Logger
}

// NewHandler creates the health handler.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// Status handles GET /: overall health including the database check.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		h.logger.Warn("health check ping failed", zap.Error(err))
		jsonutil.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}

	jsonutil.OK(w, map[string]string{
		"status":   "ok",
		"database": "connected",
	})
}

// Ready handles GET /ready: same database gate as Status with a terse body.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		jsonutil.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	jsonutil.OK(w, map[string]string{"status": "ready"})
}

// Live handles GET /live.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, map[string]string{"status": "alive"})
}

// Routes mounts the probe endpoints under a prefix such as /api/health.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Status)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds the conventional root-level probe paths used by
// load balancers and orchestrators.
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/healthz", h.Status)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}
