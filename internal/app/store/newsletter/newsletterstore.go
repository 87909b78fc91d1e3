// internal/app/store/newsletter/newsletterstore.go
package newsletter

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fairway/internal/app/store/storeutil"
	"github.com/dalemusser/fairway/internal/app/system/normalize"
	"github.com/dalemusser/fairway/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no subscription matches the id.
	ErrNotFound = errors.New("subscription not found")
	// ErrDuplicateEmail is returned when the email is already subscribed.
	ErrDuplicateEmail = errors.New("email already subscribed")
)

// Store provides access to the newsletter_subscriptions collection.
type Store struct {
	c *mongo.Collection
}

// New creates a newsletter store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("newsletter_subscriptions")}
}

// Create adds a subscription. The unique email index turns a repeat signup
// into ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	sub.Email = normalize.Email(sub.Email)
	sub.CreatedAt = time.Now().UTC()

	_, err := s.c.InsertOne(ctx, sub)
	if wafflemongo.IsDup(err) {
		return ErrDuplicateEmail
	}
	return err
}

// List returns subscriptions newest first, paginated.
func (s *Store) List(ctx context.Context, limit, page int64) ([]models.NewsletterSubscription, error) {
	opts := storeutil.Paginate(limit, page).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.NewsletterSubscription
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the subscription (unsubscribe by id).
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

// DeleteByEmail removes the subscription for the given email.
func (s *Store) DeleteByEmail(ctx context.Context, email string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"email": normalize.Email(email)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of subscriptions.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
