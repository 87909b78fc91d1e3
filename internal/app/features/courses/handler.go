// internal/app/features/courses/handler.go

// Package courses serves the golf course catalog: public reads plus admin
// create/update/deactivate/reorder.
package courses

import (
	"errors"
	"net/http"

	"github.com/dalemusser/fairway/internal/app/store/audit"
	coursestore "github.com/dalemusser/fairway/internal/app/store/courses"
	"github.com/dalemusser/fairway/internal/app/system/auditlog"
	"github.com/dalemusser/fairway/internal/app/system/inputval"
	"github.com/dalemusser/fairway/internal/app/system/jsonutil"
	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves golf course endpoints.
type Handler struct {
	store  *coursestore.Store
	audit  *auditlog.Logger
	logger *zap.Logger
}

// NewHandler creates the golf course handler.
func NewHandler(store *coursestore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{store: store, audit: auditLogger, logger: logger}
}

// List handles GET /golf-courses: active courses in display order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.store.ListActive(r.Context())
	if err != nil {
		h.logger.Error("failed to list golf courses", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	if courses == nil {
		courses = []models.GolfCourse{}
	}
	jsonutil.OK(w, courses)
}

// Get handles GET /golf-courses/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	course, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, coursestore.ErrNotFound) {
		jsonutil.NotFound(w, "golf course not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get golf course", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	jsonutil.OK(w, course)
}

type createInput struct {
	ID          string            `json:"id" validate:"required,max=100" label:"Course id"`
	Name        string            `json:"name" validate:"required,max=200" label:"Name"`
	Description map[string]string `json:"description"`
	Image       string            `json:"image" validate:"required,httpurl" label:"Image URL"`
	Holes       int               `json:"holes" validate:"required" label:"Holes"`
	Par         int               `json:"par" validate:"required" label:"Par"`
	PriceFrom   *float64          `json:"price_from"`
	Location    string            `json:"location" validate:"required,max=200" label:"Location"`
	FullAddress string            `json:"full_address"`
	Phone       string            `json:"phone"`
	Features    []string          `json:"features"`
	BookingURL  string            `json:"booking_url" validate:"required,httpurl" label:"Booking URL"`
}

// Create handles POST /golf-courses (admin).
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

	course := &models.GolfCourse{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Holes:       in.Holes,
		Par:         in.Par,
		PriceFrom:   in.PriceFrom,
		Location:    in.Location,
		FullAddress: in.FullAddress,
		Phone:       in.Phone,
		Features:    in.Features,
		BookingURL:  in.BookingURL,
	}

	err := h.store.Create(r.Context(), course)
	if errors.Is(err, coursestore.ErrDuplicateID) {
		jsonutil.Conflict(w, "golf course with this id already exists")
		return
	}
	if err != nil {
		h.logger.Error("failed to create golf course", zap.String("id", in.ID), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentCreated, "golf_course", course.ID)
	jsonutil.Created(w, course)
}

type updateInput struct {
	Name         *string           `json:"name"`
	Description  map[string]string `json:"description"`
	Image        *string           `json:"image"`
	Holes        *int              `json:"holes"`
	Par          *int              `json:"par"`
	PriceFrom    *float64          `json:"price_from"`
	Location     *string           `json:"location"`
	FullAddress  *string           `json:"full_address"`
	Phone        *string           `json:"phone"`
	Features     []string          `json:"features"`
	BookingURL   *string           `json:"booking_url"`
	IsActive     *bool             `json:"is_active"`
	DisplayOrder *int              `json:"display_order"`
}

// Update handles PUT /golf-courses/{id} (admin). Only the fields present in
// the body are changed.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in updateInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}
	if in.Image != nil && !inputval.IsValidHTTPURL(*in.Image) {
		jsonutil.ValidationError(w, map[string]string{"image": "Image URL must be a valid URL starting with http:// or https://."})
		return
	}
	if in.BookingURL != nil && !inputval.IsValidHTTPURL(*in.BookingURL) {
		jsonutil.ValidationError(w, map[string]string{"booking_url": "Booking URL must be a valid URL starting with http:// or https://."})
		return
	}

	err := h.store.Update(r.Context(), id, coursestore.UpdateInput{
		Name:         in.Name,
		Description:  in.Description,
		Image:        in.Image,
		Holes:        in.Holes,
		Par:          in.Par,
		PriceFrom:    in.PriceFrom,
		Location:     in.Location,
		FullAddress:  in.FullAddress,
		Phone:        in.Phone,
		Features:     in.Features,
		BookingURL:   in.BookingURL,
		IsActive:     in.IsActive,
		DisplayOrder: in.DisplayOrder,
	})
	if errors.Is(err, coursestore.ErrNotFound) {
		jsonutil.NotFound(w, "golf course not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update golf course", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentUpdated, "golf_course", id)

	course, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to reload golf course after update", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	jsonutil.OK(w, course)
}

// Delete handles DELETE /golf-courses/{id} (admin). Soft delete: the course
// is deactivated, not removed.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.SoftDelete(r.Context(), id)
	if errors.Is(err, coursestore.ErrNotFound) {
		jsonutil.NotFound(w, "golf course not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to deactivate golf course", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentDeleted, "golf_course", id)
	jsonutil.OK(w, map[string]string{"status": "deactivated", "id": id})
}

// Reorder handles POST /golf-courses/reorder (admin). Assigns display_order
// by position in the submitted id list.
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := jsonutil.Decode(r, &req); err != nil || len(req.IDs) == 0 {
		jsonutil.BadRequest(w, "ids is required")
		return
	}

	matched, err := h.store.Reorder(r.Context(), req.IDs)
	if err != nil {
		h.logger.Error("failed to reorder golf courses", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentUpdated, "golf_course", "reorder")
	jsonutil.OK(w, map[string]int64{"reordered": matched})
}
