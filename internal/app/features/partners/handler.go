// internal/app/features/partners/handler.go

// Package partners serves partner offers (hotels, restaurants, beach clubs,
// cafe/bars): public filtered reads plus admin mutations.
package partners

import (
	"errors"
	"net/http"

	"github.com/dalemusser/fairway/internal/app/store/audit"
	partnerstore "github.com/dalemusser/fairway/internal/app/store/partners"
	"github.com/dalemusser/fairway/internal/app/system/auditlog"
	"github.com/dalemusser/fairway/internal/app/system/inputval"
	"github.com/dalemusser/fairway/internal/app/system/jsonutil"
	"github.com/dalemusser/fairway/internal/app/system/normalize"
	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves partner offer endpoints.
type Handler struct {
	store  *partnerstore.Store
	audit  *auditlog.Logger
	logger *zap.Logger
}

// NewHandler creates the partner offer handler.
func NewHandler(store *partnerstore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{store: store, audit: auditLogger, logger: logger}
}

// List handles GET /partner-offers?type=. An unknown type filter returns an
// empty list rather than an error; a malformed one is rejected.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	offerType := normalize.OfferType(r.URL.Query().Get("type"))
	if offerType != "" && !models.IsValidOfferType(offerType) {
		jsonutil.ValidationError(w, map[string]string{"type": "Offer type must be one of: hotel, restaurant, beach_club, cafe_bar."})
		return
	}

	offers, err := h.store.ListActive(r.Context(), offerType)
	if err != nil {
		h.logger.Error("failed to list partner offers", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	if offers == nil {
		offers = []models.PartnerOffer{}
	}
	jsonutil.OK(w, offers)
}

// Get handles GET /partner-offers/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	offer, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, partnerstore.ErrNotFound) {
		jsonutil.NotFound(w, "partner offer not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get partner offer", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	jsonutil.OK(w, offer)
}

type createInput struct {
	ID              string            `json:"id" validate:"required,max=100" label:"Offer id"`
	Name            string            `json:"name" validate:"required,max=200" label:"Name"`
	Type            string            `json:"type" validate:"required,offertype" label:"Offer type"`
	Description     map[string]string `json:"description"`
	Image           string            `json:"image" validate:"required,httpurl" label:"Image URL"`
	Location        string            `json:"location" validate:"required,max=200" label:"Location"`
	Deal            map[string]string `json:"deal"`
	OriginalPrice   *float64          `json:"original_price"`
	OfferPrice      *float64          `json:"offer_price"`
	DiscountPercent *int              `json:"discount_percent"`
	ContactURL      string            `json:"contact_url" validate:"required,httpurl" label:"Contact URL"`
}

// Create handles POST /partner-offers (admin).
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

	offer := &models.PartnerOffer{
		ID:              in.ID,
		Name:            in.Name,
		Type:            normalize.OfferType(in.Type),
		Description:     in.Description,
		Image:           in.Image,
		Location:        in.Location,
		Deal:            in.Deal,
		OriginalPrice:   in.OriginalPrice,
		OfferPrice:      in.OfferPrice,
		DiscountPercent: in.DiscountPercent,
		ContactURL:      in.ContactURL,
	}

	err := h.store.Create(r.Context(), offer)
	if errors.Is(err, partnerstore.ErrDuplicateID) {
		jsonutil.Conflict(w, "partner offer with this id already exists")
		return
	}
	if err != nil {
		h.logger.Error("failed to create partner offer", zap.String("id", in.ID), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentCreated, "partner_offer", offer.ID)
	jsonutil.Created(w, offer)
}

type updateInput struct {
	Name            *string           `json:"name"`
	Type            *string           `json:"type"`
	Description     map[string]string `json:"description"`
	Image           *string           `json:"image"`
	Location        *string           `json:"location"`
	Deal            map[string]string `json:"deal"`
	OriginalPrice   *float64          `json:"original_price"`
	OfferPrice      *float64          `json:"offer_price"`
	DiscountPercent *int              `json:"discount_percent"`
	ContactURL      *string           `json:"contact_url"`
	IsActive        *bool             `json:"is_active"`
	DisplayOrder    *int              `json:"display_order"`
}

// Update handles PUT /partner-offers/{id} (admin).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in updateInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}
	if in.Type != nil {
		t := normalize.OfferType(*in.Type)
		if !models.IsValidOfferType(t) {
			jsonutil.ValidationError(w, map[string]string{"type": "Offer type must be one of: hotel, restaurant, beach_club, cafe_bar."})
			return
		}
		in.Type = &t
	}

	err := h.store.Update(r.Context(), id, partnerstore.UpdateInput{
		Name:            in.Name,
		Type:            in.Type,
		Description:     in.Description,
		Image:           in.Image,
		Location:        in.Location,
		Deal:            in.Deal,
		OriginalPrice:   in.OriginalPrice,
		OfferPrice:      in.OfferPrice,
		DiscountPercent: in.DiscountPercent,
		ContactURL:      in.ContactURL,
		IsActive:        in.IsActive,
		DisplayOrder:    in.DisplayOrder,
	})
	if errors.Is(err, partnerstore.ErrNotFound) {
		jsonutil.NotFound(w, "partner offer not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update partner offer", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentUpdated, "partner_offer", id)

	offer, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to reload partner offer after update", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	jsonutil.OK(w, offer)
}

// Delete handles DELETE /partner-offers/{id} (admin). Soft delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.SoftDelete(r.Context(), id)
	if errors.Is(err, partnerstore.ErrNotFound) {
		jsonutil.NotFound(w, "partner offer not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to deactivate partner offer", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentDeleted, "partner_offer", id)
	jsonutil.OK(w, map[string]string{"status": "deactivated", "id": id})
}
