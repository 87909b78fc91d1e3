// internal/app/features/newsletter/handler.go

// Package newsletter captures mailing list signups. A duplicate email is a
// conflict, not a silent success, so the frontend can tell the subscriber
// they are already on the list.
package newsletter

import (
	"errors"
	"net/http"
	"strconv"

	newsletterstore "github.com/dalemusser/fairway/internal/app/store/newsletter"
	"github.com/dalemusser/fairway/internal/app/system/inputval"
	"github.com/dalemusser/fairway/internal/app/system/jsonutil"
	"github.com/dalemusser/fairway/internal/app/system/mailer"
	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves newsletter endpoints.
type Handler struct {
	store    *newsletterstore.Store
	mail     *mailer.Mailer
	siteName string
	logger   *zap.Logger
}

// NewHandler creates the newsletter handler.
func NewHandler(store *newsletterstore.Store, mail *mailer.Mailer, siteName string, logger *zap.Logger) *Handler {
	return &Handler{store: store, mail: mail, siteName: siteName, logger: logger}
}

type subscribeInput struct {
	Email    string `json:"email" validate:"required,email,max=254" label:"Email"`
	Language string `json:"language" validate:"max=10" label:"Language"`
}

// Subscribe handles POST /newsletter.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in subscribeInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}
	if result := inputval.Validate(in); result.HasErrors() {
		jsonutil.ValidationError(w, result.Fields())
		return
	}

	sub := &models.NewsletterSubscription{
		Email:    in.Email,
		Language: in.Language,
	}

	err := h.store.Create(r.Context(), sub)
	if errors.Is(err, newsletterstore.ErrDuplicateEmail) {
		jsonutil.Conflict(w, "email is already subscribed")
		return
	}
	if err != nil {
		h.logger.Error("failed to create subscription", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	if h.mail.Enabled() {
		go h.sendWelcome(sub.Email)
	}

	jsonutil.Created(w, sub)
}

func (h *Handler) sendWelcome(email string) {
	text, html := mailer.NewsletterWelcome(mailer.NewsletterWelcomeData{
		SiteName: h.siteName,
		Email:    email,
	})

	err := h.mail.Send(mailer.Email{
		To:       email,
		Subject:  "Welcome to the " + h.siteName + " newsletter",
		TextBody: text,
		HTMLBody: html,
	})
	if err != nil {
		h.logger.Warn("newsletter welcome email failed",
			zap.String("email", email),
			zap.Error(err))
	}
}

// List handles GET /newsletter (admin): subscriptions newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 100)
	page := parseQueryInt(r, "page", 1)

	out, err := h.store.List(r.Context(), limit, page)
	if err != nil {
		h.logger.Error("failed to list subscriptions", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	if out == nil {
		out = []models.NewsletterSubscription{}
	}
	jsonutil.OK(w, out)
}

// Delete handles DELETE /newsletter/{id} (admin): unsubscribe.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, newsletterstore.ErrNotFound) {
		jsonutil.NotFound(w, "subscription not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete subscription", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	jsonutil.OK(w, map[string]string{"status": "unsubscribed", "id": id})
}

func parseQueryInt(r *http.Request, name string, def int64) int64 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
