// internal/app/system/apistats/middleware.go

// Package apistats records per-route-group request counters into time
// buckets. Recording happens off the request path; a slow or down stats
// collection never delays a response.
package apistats

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/fairway/internal/app/store/apistats"
	"go.uber.org/zap"
)

// Recorder folds request observations into the api_stats store.
type Recorder struct {
	store          *apistats.Store
	logger         *zap.Logger
	bucketDuration time.Duration
}

// NewRecorder creates a recorder writing buckets of the given duration.
func NewRecorder(store *apistats.Store, logger *zap.Logger, bucketDuration time.Duration) *Recorder {
	if bucketDuration <= 0 {
		bucketDuration = time.Hour
	}
	return &Recorder{store: store, logger: logger, bucketDuration: bucketDuration}
}

// Record captures one request asynchronously.
func (r *Recorder) Record(statType apistats.StatType, at time.Time, latency time.Duration, isError bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.store.Record(ctx, statType, at, latency, isError, r.bucketDuration); err != nil {
			r.logger.Warn("failed to record api stats",
				zap.String("stat_type", string(statType)),
				zap.Error(err))
		}
	}()
}

// MiddlewareWithRecorder returns middleware recording each request under
// statType. A nil recorder is a passthrough, so stats can be disabled
// without touching route wiring.
func MiddlewareWithRecorder(rec *Recorder, statType apistats.StatType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rec == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			rec.Record(statType, start, time.Since(start), ww.statusCode >= 400)
		})
	}
}

// responseWrapper captures the response status code.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
