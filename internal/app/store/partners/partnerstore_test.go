package partners

import (
	"errors"
	"testing"

	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/dalemusser/fairway/internal/testutil"
)

func testOffer(id, offerType string, order int) *models.PartnerOffer {
	return &models.PartnerOffer{
		ID:           id,
		Name:         "Offer " + id,
		Type:         offerType,
		Description:  map[string]string{"en": "A great deal."},
		Image:        "https://example.com/offer.jpg",
		Location:     "Palma",
		Deal:         map[string]string{"en": "20% off"},
		ContactURL:   "https://example.com/contact",
		DisplayOrder: order,
	}
}

func TestListActive_FiltersByType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, testOffer("hotel-one", models.OfferTypeHotel, 0)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Create(ctx, testOffer("restaurant-one", models.OfferTypeRestaurant, 1)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	hotels, err := store.ListActive(ctx, models.OfferTypeHotel)
	if err != nil {
		t.Fatalf("ListActive(hotel) error = %v", err)
	}
	if len(hotels) != 1 || hotels[0].ID != "hotel-one" {
		t.Errorf("ListActive(hotel) = %v, want [hotel-one]", hotels)
	}

	all, err := store.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("ListActive(all) error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListActive(all) len = %d, want 2", len(all))
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, testOffer("beach-dup", models.OfferTypeBeachClub, 0)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := store.Create(ctx, testOffer("beach-dup", models.OfferTypeBeachClub, 1))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicateID", err)
	}
}

func TestUpdate_PricingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, testOffer("cafe-upd", models.OfferTypeCafeBar, 0)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	original := 50.0
	offer := 40.0
	discount := 20
	err := store.Update(ctx, "cafe-upd", UpdateInput{
		OriginalPrice:   &original,
		OfferPrice:      &offer,
		DiscountPercent: &discount,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := store.GetByID(ctx, "cafe-upd")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.OfferPrice == nil || *found.OfferPrice != 40.0 {
		t.Errorf("offer_price = %v, want 40", found.OfferPrice)
	}
	if found.DiscountPercent == nil || *found.DiscountPercent != 20 {
		t.Errorf("discount_percent = %v, want 20", found.DiscountPercent)
	}
	// Untouched fields keep their values.
	if found.Name != "Offer cafe-upd" {
		t.Errorf("name = %q, want unchanged", found.Name)
	}
}

func TestSoftDelete_HidesFromListing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Create(ctx, testOffer("hotel-gone", models.OfferTypeHotel, 0)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.SoftDelete(ctx, "hotel-gone"); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	list, err := store.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("ListActive() len = %d, want 0", len(list))
	}

	if err := store.SoftDelete(ctx, "hotel-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SoftDelete(missing) error = %v, want ErrNotFound", err)
	}
}
