// internal/app/store/users/userstore.go
package users

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fairway/internal/app/system/normalize"
	"github.com/dalemusser/fairway/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// Store provides access to the users collection.
type Store struct {
	c *mongo.Collection
}

// New creates a user store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID fetches a user by its ID.
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail fetches a user by email. The email is normalized before lookup.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertByEmail creates or refreshes the user identified by email and returns
// the stored record. An existing user keeps its ID; name and picture are
// updated in place. A new user gets a freshly minted ID.
func (s *Store) UpsertByEmail(ctx context.Context, email, name, picture string) (*models.User, error) {
	email = normalize.Email(email)
	name = normalize.Name(name)
	now := time.Now().UTC()

	set := bson.M{
		"name":       name,
		"updated_at": now,
	}
	if picture != "" {
		set["picture"] = picture
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        models.NewUserID(),
			"email":      email,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var u models.User
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Count returns the total number of users.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
