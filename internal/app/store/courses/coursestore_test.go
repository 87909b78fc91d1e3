package courses

import (
	"errors"
	"testing"

	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/dalemusser/fairway/internal/testutil"
)

func testCourse(id, name string, order int) *models.GolfCourse {
	return &models.GolfCourse{
		ID:           id,
		Name:         name,
		Description:  map[string]string{"en": "A fine course."},
		Image:        "https://example.com/course.jpg",
		Holes:        18,
		Par:          72,
		Location:     "Mallorca",
		BookingURL:   "https://example.com/book",
		DisplayOrder: order,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := testCourse("golf-test", "Test Golf Club", 0)
	if err := store.Create(ctx, course); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !course.IsActive {
		t.Error("new course should be active")
	}

	found, err := store.GetByID(ctx, "golf-test")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.Name != "Test Golf Club" {
		t.Errorf("name = %q, want %q", found.Name, "Test Golf Club")
	}
	if found.Features == nil {
		t.Error("features should default to an empty slice, not nil")
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, testCourse("golf-dup", "First", 0)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := store.Create(ctx, testCourse("golf-dup", "Second", 1))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicateID", err)
	}
}

func TestListActive_OrderAndSoftDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, testCourse("golf-b", "Second Course", 1)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Create(ctx, testCourse("golf-a", "First Course", 0)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Create(ctx, testCourse("golf-c", "Third Course", 2)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.SoftDelete(ctx, "golf-c"); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	list, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListActive() len = %d, want 2", len(list))
	}
	if list[0].ID != "golf-a" || list[1].ID != "golf-b" {
		t.Errorf("order = [%s, %s], want [golf-a, golf-b]", list[0].ID, list[1].ID)
	}

	// Soft-deleted courses stay reachable by id.
	deleted, err := store.GetByID(ctx, "golf-c")
	if err != nil {
		t.Fatalf("GetByID() after soft delete error = %v", err)
	}
	if deleted.IsActive {
		t.Error("soft-deleted course should be inactive")
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, testCourse("golf-upd", "Original", 0)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	name := "Renamed"
	price := 95.0
	err := store.Update(ctx, "golf-upd", UpdateInput{Name: &name, PriceFrom: &price})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := store.GetByID(ctx, "golf-upd")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.Name != "Renamed" {
		t.Errorf("name = %q, want %q", found.Name, "Renamed")
	}
	if found.PriceFrom == nil || *found.PriceFrom != 95.0 {
		t.Errorf("price_from = %v, want 95", found.PriceFrom)
	}
	// Untouched fields keep their values.
	if found.Holes != 18 {
		t.Errorf("holes = %d, want 18", found.Holes)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	name := "Ghost"
	err := store.Update(ctx, "golf-missing", UpdateInput{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestReorder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i, id := range []string{"golf-x", "golf-y", "golf-z"} {
		if err := store.Create(ctx, testCourse(id, id, i)); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	matched, err := store.Reorder(ctx, []string{"golf-z", "golf-x", "golf-y"})
	if err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}
	if matched != 3 {
		t.Errorf("matched = %d, want 3", matched)
	}

	list, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	want := []string{"golf-z", "golf-x", "golf-y"}
	for i, c := range list {
		if c.ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, c.ID, want[i])
		}
	}
}
