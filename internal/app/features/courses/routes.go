// internal/app/features/courses/routes.go
package courses

import (
	"net/http"

	apistatsstore "github.com/dalemusser/fairway/internal/app/store/apistats"
	"github.com/dalemusser/fairway/internal/app/system/apicors"
	"github.com/dalemusser/fairway/internal/app/system/apistats"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes mounts the golf course endpoints. Mutations sit behind the admin
// API key.
func Routes(h *Handler, adminKey string, recorder *apistats.Recorder, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())
	r.Use(apistats.MiddlewareWithRecorder(recorder, apistatsstore.StatTypeContent))

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(auth.APIKeyAuth(adminKey, logger))
		r.Post("/", h.Create)
		r.Post("/reorder", h.Reorder)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
