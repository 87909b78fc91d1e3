package newsletter

import (
	"errors"
	"testing"

	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/dalemusser/fairway/internal/testutil"
)

func TestCreate_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub := &models.NewsletterSubscription{Email: "reader@example.com", Language: "en"}
	if err := store.Create(ctx, sub); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sub.ID == "" {
		t.Error("Create() should assign a generated id")
	}

	// Same address with different casing is still a duplicate.
	err := store.Create(ctx, &models.NewsletterSubscription{Email: "Reader@Example.COM"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicateEmail", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}

func TestDeleteByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, &models.NewsletterSubscription{Email: "leaver@example.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.DeleteByEmail(ctx, "LEAVER@example.com"); err != nil {
		t.Fatalf("DeleteByEmail() error = %v", err)
	}
	if err := store.DeleteByEmail(ctx, "leaver@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteByEmail() error = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if err := store.Create(ctx, &models.NewsletterSubscription{Email: email}); err != nil {
			t.Fatalf("Create(%s) error = %v", email, err)
		}
	}

	page, err := store.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page) != 1 {
		t.Errorf("List(limit=2, page=2) len = %d, want 1", len(page))
	}
}
