// internal/app/features/authapi/routes.go
package authapi

import (
	"net/http"

	apistatsstore "github.com/dalemusser/fairway/internal/app/store/apistats"
	"github.com/dalemusser/fairway/internal/app/system/apicors"
	"github.com/dalemusser/fairway/internal/app/system/apistats"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the auth endpoints.
func Routes(h *Handler, sm *auth.Manager, recorder *apistats.Recorder) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())
	r.Use(apistats.MiddlewareWithRecorder(recorder, apistatsstore.StatTypeAuth))
	r.Use(sm.LoadSessionUser)

	r.Post("/session", h.StartSession)
	r.Get("/me", h.Me)
	r.Post("/logout", h.Logout)

	return r
}
