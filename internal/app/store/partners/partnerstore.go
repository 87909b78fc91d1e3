// internal/app/store/partners/partnerstore.go
package partners

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fairway/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no offer matches the id.
	ErrNotFound = errors.New("partner offer not found")
	// ErrDuplicateID is returned when creating an offer whose id is taken.
	ErrDuplicateID = errors.New("partner offer id already exists")
)

// Store provides access to the partner_offers collection. Hotels,
// restaurants, beach clubs, and cafe/bars share the collection and are
// told apart by the type field.
type Store struct {
	c *mongo.Collection
}

// New creates a partner offer store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("partner_offers")}
}

// ListActive returns active offers ordered by display_order. An empty
// offerType returns all types; otherwise only offers of that type.
func (s *Store) ListActive(ctx context.Context, offerType string) ([]models.PartnerOffer, error) {
	filter := bson.M{"is_active": true}
	if offerType != "" {
		filter["type"] = offerType
	}

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var offers []models.PartnerOffer
	if err := cur.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// GetByID fetches an offer by id, active or not.
func (s *Store) GetByID(ctx context.Context, id string) (*models.PartnerOffer, error) {
	var offer models.PartnerOffer
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&offer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// Create inserts a new offer. A clash with an existing id returns
// ErrDuplicateID.
func (s *Store) Create(ctx context.Context, offer *models.PartnerOffer) error {
	now := time.Now().UTC()
	offer.IsActive = true
	offer.CreatedAt = now
	offer.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, offer)
	if wafflemongo.IsDup(err) {
		return ErrDuplicateID
	}
	return err
}

// UpdateInput holds optional offer fields. Only non-nil fields are written.
type UpdateInput struct {
	Name            *string
	Type            *string
	Description     map[string]string
	Image           *string
	Location        *string
	Deal            map[string]string
	OriginalPrice   *float64
	OfferPrice      *float64
	DiscountPercent *int
	ContactURL      *string
	IsActive        *bool
	DisplayOrder    *int
}

// Update applies the provided fields to the offer and stamps updated_at.
func (s *Store) Update(ctx context.Context, id string, in UpdateInput) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Type != nil {
		set["type"] = *in.Type
	}
	if in.Description != nil {
		set["description"] = in.Description
	}
	if in.Image != nil {
		set["image"] = *in.Image
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.Deal != nil {
		set["deal"] = in.Deal
	}
	if in.OriginalPrice != nil {
		set["original_price"] = *in.OriginalPrice
	}
	if in.OfferPrice != nil {
		set["offer_price"] = *in.OfferPrice
	}
	if in.DiscountPercent != nil {
		set["discount_percent"] = *in.DiscountPercent
	}
	if in.ContactURL != nil {
		set["contact_url"] = *in.ContactURL
	}
	if in.IsActive != nil {
		set["is_active"] = *in.IsActive
	}
	if in.DisplayOrder != nil {
		set["display_order"] = *in.DisplayOrder
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete deactivates the offer.
func (s *Store) SoftDelete(ctx context.Context, id string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
