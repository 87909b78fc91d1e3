// internal/app/features/reviews/handler.go

// Package reviews implements review submission and moderation. Authenticated
// users submit reviews that start pending; admin endpoints approve or reject
// them; only approved reviews appear in public listings.
package reviews

import (
	"errors"
	"net/http"
	"strconv"

	reviewstore "github.com/dalemusser/fairway/internal/app/store/reviews"
	"github.com/dalemusser/fairway/internal/app/system/auditlog"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/dalemusser/fairway/internal/app/system/htmlsanitize"
	"github.com/dalemusser/fairway/internal/app/system/inputval"
	"github.com/dalemusser/fairway/internal/app/system/jsonutil"
	"github.com/dalemusser/fairway/internal/app/system/normalize"
	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves review endpoints.
type Handler struct {
	store  *reviewstore.Store
	audit  *auditlog.Logger
	logger *zap.Logger
}

// NewHandler creates the review handler.
func NewHandler(store *reviewstore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{store: store, audit: auditLogger, logger: logger}
}

// ListApproved handles GET /reviews?platform=&limit=: approved reviews
// newest first.
func (h *Handler) ListApproved(w http.ResponseWriter, r *http.Request) {
	platform := normalize.QueryParam(r.URL.Query().Get("platform"))

	var limit int64
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			jsonutil.BadRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	out, err := h.store.ListApproved(r.Context(), platform, limit)
	if err != nil {
		h.logger.Error("failed to list approved reviews", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	if out == nil {
		out = []models.UserReview{}
	}
	jsonutil.OK(w, out)
}

// Stats handles GET /reviews/stats: totals over approved reviews.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats(r.Context())
	if err != nil {
		h.logger.Error("failed to aggregate review stats", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	jsonutil.OK(w, stats)
}

type submitInput struct {
	Rating     int    `json:"rating" validate:"required" label:"Rating"`
	ReviewText string `json:"review_text" validate:"required,max=4000" label:"Review text"`
	Platform   string `json:"platform"`
	Language   string `json:"language"`
	Country    string `json:"country"`
}

// Submit handles POST /reviews/submit. Requires a valid session. The
// submitter's name, email, and picture are copied onto the review so later
// profile edits do not rewrite published history.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		jsonutil.Unauthorized(w, "authentication required")
		return
	}

	var in submitInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}
	if result := inputval.Validate(in); result.HasErrors() {
		jsonutil.ValidationError(w, result.Fields())
		return
	}
	if !inputval.IsValidRating(in.Rating) {
		jsonutil.ValidationError(w, map[string]string{"rating": "Rating must be between 1 and 5."})
		return
	}

	platform := in.Platform
	if platform == "" {
		platform = "Website"
	}

	review := &models.UserReview{
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		UserPicture: user.Picture,
		Rating:      in.Rating,
		ReviewText:  htmlsanitize.StripTags(in.ReviewText),
		Platform:    platform,
		Language:    in.Language,
		Country:     in.Country,
	}

	if err := h.store.Create(r.Context(), review); err != nil {
		h.logger.Error("failed to create review",
			zap.String("user_id", user.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ReviewSubmitted(r.Context(), r, user.ID, review.ID)
	jsonutil.Created(w, map[string]string{
		"message":   "Review submitted successfully. It will appear after approval.",
		"review_id": review.ID,
	})
}

// Mine handles GET /reviews/mine: the caller's own reviews in every
// moderation state.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		jsonutil.Unauthorized(w, "authentication required")
		return
	}

	out, err := h.store.ListByUser(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to list user reviews",
			zap.String("user_id", user.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	if out == nil {
		out = []models.UserReview{}
	}
	jsonutil.OK(w, out)
}

// ListPending handles GET /reviews/pending (admin): reviews awaiting
// moderation, oldest submissions last.
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.ListByStatus(r.Context(), models.ReviewStatusPending, 0)
	if err != nil {
		h.logger.Error("failed to list pending reviews", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	if out == nil {
		out = []models.UserReview{}
	}
	jsonutil.OK(w, out)
}

// Approve handles PUT /reviews/{id}/approve (admin).
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, models.ReviewStatusApproved)
}

// Reject handles PUT /reviews/{id}/reject (admin).
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, models.ReviewStatusRejected)
}

func (h *Handler) moderate(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "id")

	err := h.store.SetStatus(r.Context(), id, status)
	if errors.Is(err, reviewstore.ErrNotFound) {
		jsonutil.NotFound(w, "review not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to set review status",
			zap.String("review_id", id),
			zap.String("status", status),
			zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ReviewModerated(r.Context(), r, id, status)
	jsonutil.OK(w, map[string]string{"review_id": id, "status": status})
}
