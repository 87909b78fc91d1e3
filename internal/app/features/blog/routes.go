// internal/app/features/blog/routes.go
package blog

import (
	"net/http"

	apistatsstore "github.com/dalemusser/fairway/internal/app/store/apistats"
	"github.com/dalemusser/fairway/internal/app/system/apicors"
	"github.com/dalemusser/fairway/internal/app/system/apistats"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes mounts the blog endpoints. Public reads address posts by slug;
// admin mutations address them by id.
func Routes(h *Handler, adminKey string, recorder *apistats.Recorder, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())
	r.Use(apistats.MiddlewareWithRecorder(recorder, apistatsstore.StatTypeContent))

	r.Get("/", h.List)
	r.Get("/{slug}", h.GetBySlug)

	r.Group(func(r chi.Router) {
		r.Use(auth.APIKeyAuth(adminKey, logger))
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
