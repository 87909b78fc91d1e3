// internal/app/store/contact/contactstore.go
package contact

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fairway/internal/app/store/storeutil"
	"github.com/dalemusser/fairway/internal/app/system/normalize"
	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no inquiry matches the id.
var ErrNotFound = errors.New("contact inquiry not found")

// Store provides access to the contact_inquiries collection.
type Store struct {
	c *mongo.Collection
}

// New creates a contact inquiry store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_inquiries")}
}

// Create inserts an inquiry with a generated id. An empty inquiry type
// defaults to "general".
func (s *Store) Create(ctx context.Context, inquiry *models.ContactInquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.NewString()
	}
	inquiry.Email = normalize.Email(inquiry.Email)
	if inquiry.InquiryType == "" {
		inquiry.InquiryType = "general"
	}
	inquiry.CreatedAt = time.Now().UTC()

	_, err := s.c.InsertOne(ctx, inquiry)
	return err
}

// List returns inquiries newest first, paginated.
func (s *Store) List(ctx context.Context, limit, page int64) ([]models.ContactInquiry, error) {
	opts := storeutil.Paginate(limit, page).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.ContactInquiry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the inquiry.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of inquiries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
