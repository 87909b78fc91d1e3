// internal/app/features/contact/handler.go

// Package contact captures contact form submissions and notifies the site
// operators by email. The notification is fire-and-forget: a down SMTP
// server never fails the submission.
package contact

import (
	"errors"
	"net/http"
	"strconv"

	contactstore "github.com/dalemusser/fairway/internal/app/store/contact"
	"github.com/dalemusser/fairway/internal/app/system/htmlsanitize"
	"github.com/dalemusser/fairway/internal/app/system/inputval"
	"github.com/dalemusser/fairway/internal/app/system/jsonutil"
	"github.com/dalemusser/fairway/internal/app/system/mailer"
	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves contact inquiry endpoints.
type Handler struct {
	store      *contactstore.Store
	mail       *mailer.Mailer
	notifyAddr string
	logger     *zap.Logger
}

// NewHandler creates the contact handler. notifyAddr is where inquiry
// notifications are sent; empty disables them.
func NewHandler(store *contactstore.Store, mail *mailer.Mailer, notifyAddr string, logger *zap.Logger) *Handler {
	return &Handler{store: store, mail: mail, notifyAddr: notifyAddr, logger: logger}
}

type createInput struct {
	Name        string `json:"name" validate:"required,max=200" label:"Name"`
	Email       string `json:"email" validate:"required,email,max=254" label:"Email"`
	Phone       string `json:"phone" validate:"max=50" label:"Phone"`
	Country     string `json:"country" validate:"required,max=100" label:"Country"`
	Message     string `json:"message" validate:"required,max=8000" label:"Message"`
	InquiryType string `json:"inquiry_type" validate:"max=50" label:"Inquiry type"`
}

// Create handles POST /contact.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}
	if result := inputval.Validate(in); result.HasErrors() {
		jsonutil.ValidationError(w, result.Fields())
		return
	}

	inquiry := &models.ContactInquiry{
		Name:        htmlsanitize.StripTags(in.Name),
		Email:       in.Email,
		Phone:       in.Phone,
		Country:     htmlsanitize.StripTags(in.Country),
		Message:     htmlsanitize.StripTags(in.Message),
		InquiryType: in.InquiryType,
	}

	if err := h.store.Create(r.Context(), inquiry); err != nil {
		h.logger.Error("failed to save contact inquiry", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	if h.mail.Enabled() && h.notifyAddr != "" {
		go h.sendNotification(inquiry)
	}

	jsonutil.Created(w, inquiry)
}

func (h *Handler) sendNotification(inquiry *models.ContactInquiry) {
	text, html := mailer.ContactNotification(mailer.ContactNotificationData{
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		Phone:       inquiry.Phone,
		Country:     inquiry.Country,
		InquiryType: inquiry.InquiryType,
		Message:     inquiry.Message,
	})

	err := h.mail.Send(mailer.Email{
		To:       h.notifyAddr,
		Subject:  "New contact inquiry from " + inquiry.Name,
		TextBody: text,
		HTMLBody: html,
	})
	if err != nil {
		h.logger.Warn("contact notification email failed",
			zap.String("inquiry_id", inquiry.ID),
			zap.Error(err))
	}
}

// List handles GET /contact (admin): inquiries newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 100)
	page := parseQueryInt(r, "page", 1)

	out, err := h.store.List(r.Context(), limit, page)
	if err != nil {
		h.logger.Error("failed to list contact inquiries", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	if out == nil {
		out = []models.ContactInquiry{}
	}
	jsonutil.OK(w, out)
}

// Delete handles DELETE /contact/{id} (admin).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, contactstore.ErrNotFound) {
		jsonutil.NotFound(w, "contact inquiry not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete contact inquiry", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	jsonutil.OK(w, map[string]string{"status": "deleted", "id": id})
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
