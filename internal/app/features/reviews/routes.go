// internal/app/features/reviews/routes.go
package reviews

import (
	"net/http"

	apistatsstore "github.com/dalemusser/fairway/internal/app/store/apistats"
	"github.com/dalemusser/fairway/internal/app/system/apicors"
	"github.com/dalemusser/fairway/internal/app/system/apistats"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes mounts the review endpoints. Submission requires a session;
// moderation requires the admin API key.
func Routes(h *Handler, sm *auth.Manager, adminKey string, recorder *apistats.Recorder, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())
	r.Use(apistats.MiddlewareWithRecorder(recorder, apistatsstore.StatTypeReviews))
	r.Use(sm.LoadSessionUser)

	r.Get("/", h.ListApproved)
	r.Get("/stats", h.Stats)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Post("/submit", h.Submit)
		r.Get("/mine", h.Mine)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.APIKeyAuth(adminKey, logger))
		r.Get("/pending", h.ListPending)
		r.Put("/{id}/approve", h.Approve)
		r.Put("/{id}/reject", h.Reject)
	})

	return r
}
