// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event categories.
const (
	CategoryAuth       = "auth"
	CategoryModeration = "moderation"
	CategoryContent    = "content"
)

// Event types.
const (
	EventSessionExchangeSuccess = "session_exchange_success"
	EventSessionExchangeFailure = "session_exchange_failure"
	EventLogout                 = "logout"

	EventReviewSubmitted = "review_submitted"
	EventReviewApproved  = "review_approved"
	EventReviewRejected  = "review_rejected"

	EventContentCreated = "content_created"
	EventContentUpdated = "content_updated"
	EventContentDeleted = "content_deleted"
)

// Event is one audit record.
type Event struct {
	ID            string            `bson:"_id"`
	Category      string            `bson:"category"`
	EventType     string            `bson:"event_type"`
	UserID        *string           `bson:"user_id,omitempty"`
	IP            string            `bson:"ip,omitempty"`
	UserAgent     string            `bson:"user_agent,omitempty"`
	Success       bool              `bson:"success"`
	FailureReason string            `bson:"failure_reason,omitempty"`
	Details       map[string]string `bson:"details,omitempty"`
	CreatedAt     time.Time         `bson:"created_at"`
}

// Store provides access to the audit_logs collection.
type Store struct {
	c *mongo.Collection
}

// New creates an audit store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_logs")}
}

// Log inserts an event, filling in the id and timestamp.
func (s *Store) Log(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, e)
	return err
}

// QueryFilter selects audit events.
type QueryFilter struct {
	Category  string
	EventType string
	UserID    string
	Since     time.Time
	Until     time.Time
	Limit     int64
}

// Query returns matching events newest first. Limit defaults to 100.
func (s *Store) Query(ctx context.Context, f QueryFilter) ([]Event, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.EventType != "" {
		filter["event_type"] = f.EventType
	}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	created := bson.M{}
	if !f.Since.IsZero() {
		created["$gte"] = f.Since
	}
	if !f.Until.IsZero() {
		created["$lte"] = f.Until
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var events []Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteOlderThan removes events created before the cutoff.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
