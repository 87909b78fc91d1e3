// internal/app/features/newsletter/routes.go
package newsletter

import (
	"net/http"

	apistatsstore "github.com/dalemusser/fairway/internal/app/store/apistats"
	"github.com/dalemusser/fairway/internal/app/system/apicors"
	"github.com/dalemusser/fairway/internal/app/system/apistats"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes mounts the newsletter endpoints. Signup is public; listing and
// removal require the admin API key.
func Routes(h *Handler, adminKey string, recorder *apistats.Recorder, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())
	r.Use(apistats.MiddlewareWithRecorder(recorder, apistatsstore.StatTypeNewsletter))

	r.Post("/", h.Subscribe)

	r.Group(func(r chi.Router) {
		r.Use(auth.APIKeyAuth(adminKey, logger))
		r.Get("/", h.List)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
