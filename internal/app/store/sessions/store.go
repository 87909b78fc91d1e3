// internal/app/store/sessions/store.go
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no live session matches the token.
var ErrNotFound = errors.New("session not found")

// Session is one authenticated login. A user has at most one live session:
// creating a new one deletes any previous sessions for the same user.
type Session struct {
	ID        string    `bson:"_id"`
	Token     string    `bson:"session_token"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// Store provides access to the user_sessions collection.
type Store struct {
	c *mongo.Collection
}

// New creates a session store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_sessions")}
}

// Create inserts a session for the user that expires after ttl.
func (s *Store) Create(ctx context.Context, userID, token string, ttl time.Duration) (*Session, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if _, err := s.c.InsertOne(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// GetByToken fetches a session by token. Expired sessions are treated as
// missing even if the TTL monitor has not removed them yet.
func (s *Store) GetByToken(ctx context.Context, token string) (*Session, error) {
	var sess Session
	err := s.c.FindOne(ctx, bson.M{
		"session_token": token,
		"expires_at":    bson.M{"$gt": time.Now().UTC()},
	}).Decode(&sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// DeleteByToken removes every session carrying the token. Returns the number
// of sessions removed; zero is not an error (logout is idempotent).
func (s *Store) DeleteByToken(ctx context.Context, token string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"session_token": token})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByUser removes all sessions for the user.
func (s *Store) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteExpired removes sessions whose expiry has passed. The TTL index does
// this too; the sweep keeps the collection tidy when the monitor lags.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now().UTC()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
