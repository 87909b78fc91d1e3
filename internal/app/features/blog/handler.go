// internal/app/features/blog/handler.go

// Package blog serves blog posts: public reads by listing or slug, admin
// create/update/delete by id. Post bodies pass through the HTML sanitizer
// before storage.
package blog

import (
	"errors"
	"net/http"

	"github.com/dalemusser/fairway/internal/app/store/audit"
	blogstore "github.com/dalemusser/fairway/internal/app/store/blog"
	"github.com/dalemusser/fairway/internal/app/system/auditlog"
	"github.com/dalemusser/fairway/internal/app/system/htmlsanitize"
	"github.com/dalemusser/fairway/internal/app/system/jsonutil"
	"github.com/dalemusser/fairway/internal/app/system/normalize"
	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves blog endpoints.
type Handler struct {
	store  *blogstore.Store
	audit  *auditlog.Logger
	logger *zap.Logger
}

// NewHandler creates the blog handler.
func NewHandler(store *blogstore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{store: store, audit: auditLogger, logger: logger}
}

// List handles GET /blog?category=: published posts newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := normalize.QueryParam(r.URL.Query().Get("category"))

	posts, err := h.store.ListPublished(r.Context(), category)
	if err != nil {
		h.logger.Error("failed to list blog posts", zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	jsonutil.OK(w, posts)
}

// GetBySlug handles GET /blog/{slug}.
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.store.GetBySlug(r.Context(), slug)
	if errors.Is(err, blogstore.ErrNotFound) {
		jsonutil.NotFound(w, "blog post not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get blog post", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	jsonutil.OK(w, post)
}

type createInput struct {
	Slug     string            `json:"slug"`
	Title    map[string]string `json:"title"`
	Excerpt  map[string]string `json:"excerpt"`
	Content  map[string]string `json:"content"`
	Image    string            `json:"image"`
	Author   string            `json:"author"`
	Category string            `json:"category"`
	Tags     []string          `json:"tags"`

	Published *bool `json:"published"`
}

// Create handles POST /blog (admin). New posts default to published.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}

	fields := map[string]string{}
	if in.Slug == "" {
		fields["slug"] = "Slug is required."
	}
	if len(in.Title) == 0 {
		fields["title"] = "Title is required."
	}
	if len(in.Content) == 0 {
		fields["content"] = "Content is required."
	}
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}

	post := &models.BlogPost{
		Slug:      in.Slug,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   htmlsanitize.SanitizeMap(in.Content),
		Image:     in.Image,
		Author:    in.Author,
		Category:  in.Category,
		Tags:      in.Tags,
		Published: published,
	}

	err := h.store.Create(r.Context(), post)
	if errors.Is(err, blogstore.ErrDuplicateSlug) {
		jsonutil.Conflict(w, "blog post with this slug already exists")
		return
	}
	if err != nil {
		h.logger.Error("failed to create blog post", zap.String("slug", in.Slug), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentCreated, "blog_post", post.ID)
	jsonutil.Created(w, post)
}

type updateInput struct {
	Slug      *string           `json:"slug"`
	Title     map[string]string `json:"title"`
	Excerpt   map[string]string `json:"excerpt"`
	Content   map[string]string `json:"content"`
	Image     *string           `json:"image"`
	Author    *string           `json:"author"`
	Category  *string           `json:"category"`
	Tags      []string          `json:"tags"`
	Published *bool             `json:"published"`
}

// Update handles PUT /blog/{id} (admin).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in updateInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}

	err := h.store.Update(r.Context(), id, blogstore.UpdateInput{
		Slug:      in.Slug,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   htmlsanitize.SanitizeMap(in.Content),
		Image:     in.Image,
		Author:    in.Author,
		Category:  in.Category,
		Tags:      in.Tags,
		Published: in.Published,
	})
	if errors.Is(err, blogstore.ErrNotFound) {
		jsonutil.NotFound(w, "blog post not found")
		return
	}
	if errors.Is(err, blogstore.ErrDuplicateSlug) {
		jsonutil.Conflict(w, "blog post with this slug already exists")
		return
	}
	if err != nil {
		h.logger.Error("failed to update blog post", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentUpdated, "blog_post", id)

	post, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to reload blog post after update", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}
	jsonutil.OK(w, post)
}

// Delete handles DELETE /blog/{id} (admin). Hard delete; posts have no
// soft-delete state beyond unpublishing.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, blogstore.ErrNotFound) {
		jsonutil.NotFound(w, "blog post not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete blog post", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	h.audit.ContentChanged(r.Context(), r, audit.EventContentDeleted, "blog_post", id)
	jsonutil.OK(w, map[string]string{"status": "deleted", "id": id})
}
