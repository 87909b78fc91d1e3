package blog

import (
	"errors"
	"testing"

	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/dalemusser/fairway/internal/testutil"
)

func testPost(slug, category string, published bool) *models.BlogPost {
	return &models.BlogPost{
		Slug:      slug,
		Title:     map[string]string{"en": "Title for " + slug},
		Excerpt:   map[string]string{"en": "Excerpt."},
		Content:   map[string]string{"en": "<p>Content body.</p>"},
		Author:    "Editorial Team",
		Category:  category,
		Published: published,
	}
}

func TestCreate_AssignsIDAndDuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := testPost("first-post", "tips", true)
	if err := store.Create(ctx, post); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if post.ID == "" {
		t.Error("Create() should assign a generated id")
	}

	err := store.Create(ctx, testPost("first-post", "tips", true))
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("Create() duplicate slug error = %v, want ErrDuplicateSlug", err)
	}
}

func TestListPublished_CategoryFilterAndDrafts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, testPost("published-tips", "tips", true)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Create(ctx, testPost("published-news", "news", true)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Create(ctx, testPost("draft-tips", "tips", false)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	all, err := store.ListPublished(ctx, "")
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListPublished() len = %d, want 2 (drafts hidden)", len(all))
	}

	tips, err := store.ListPublished(ctx, "tips")
	if err != nil {
		t.Fatalf("ListPublished(tips) error = %v", err)
	}
	if len(tips) != 1 || tips[0].Slug != "published-tips" {
		t.Errorf("ListPublished(tips) = %v, want [published-tips]", tips)
	}
}

func TestGetBySlug_PublishedOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, testPost("visible", "tips", true)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Create(ctx, testPost("hidden-draft", "tips", false)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := store.GetBySlug(ctx, "visible")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if found.Slug != "visible" {
		t.Errorf("slug = %q, want %q", found.Slug, "visible")
	}

	if _, err := store.GetBySlug(ctx, "hidden-draft"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBySlug(draft) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := testPost("changing", "tips", true)
	if err := store.Create(ctx, post); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	published := false
	err := store.Update(ctx, post.ID, UpdateInput{
		Title:     map[string]string{"en": "New Title"},
		Published: &published,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	updated, err := store.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if updated.Title["en"] != "New Title" {
		t.Errorf("title = %q, want %q", updated.Title["en"], "New Title")
	}
	if updated.Published {
		t.Error("post should be unpublished after update")
	}

	if err := store.Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetByID(ctx, post.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
}
