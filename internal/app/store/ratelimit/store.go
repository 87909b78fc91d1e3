// internal/app/store/ratelimit/store.go
package ratelimit

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Attempt tracks failed session exchanges from one client address.
type Attempt struct {
	ClientIP     string     `bson:"_id"`
	FailureCount int        `bson:"failure_count"`
	WindowStart  time.Time  `bson:"window_start"`
	LockedUntil  *time.Time `bson:"locked_until,omitempty"`
	LastFailure  time.Time  `bson:"last_failure"`
}

// Store throttles repeated authentication failures per client IP. Every
// method fails open: a store error never blocks a legitimate login, it only
// disables throttling for that request.
type Store struct {
	c           *mongo.Collection
	maxFailures int
	window      time.Duration
	lockout     time.Duration
}

// New creates a rate limit store. maxFailures failed exchanges within
// window lock the address out for the lockout duration.
func New(db *mongo.Database, maxFailures int, window, lockout time.Duration) *Store {
	return &Store{
		c:           db.Collection("auth_rate_limits"),
		maxFailures: maxFailures,
		window:      window,
		lockout:     lockout,
	}
}

// CheckAllowed reports whether the address may attempt a session exchange.
// When blocked, lockedUntil carries the time the lock expires.
func (s *Store) CheckAllowed(ctx context.Context, clientIP string) (allowed bool, lockedUntil *time.Time) {
	var a Attempt
	err := s.c.FindOne(ctx, bson.M{"_id": clientIP}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return true, nil
	}
	if err != nil {
		// Fail open.
		return true, nil
	}

	now := time.Now().UTC()
	if a.LockedUntil != nil && a.LockedUntil.After(now) {
		return false, a.LockedUntil
	}
	return true, nil
}

// RecordFailure counts one failed exchange. The count resets when the
// window has elapsed since the first failure; reaching maxFailures sets
// locked_until.
func (s *Store) RecordFailure(ctx context.Context, clientIP string) {
	now := time.Now().UTC()

	var a Attempt
	err := s.c.FindOne(ctx, bson.M{"_id": clientIP}).Decode(&a)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return
	}

	count := 1
	windowStart := now
	if err == nil && now.Sub(a.WindowStart) < s.window {
		count = a.FailureCount + 1
		windowStart = a.WindowStart
	}

	update := bson.M{
		"failure_count": count,
		"window_start":  windowStart,
		"last_failure":  now,
	}
	if count >= s.maxFailures {
		update["locked_until"] = now.Add(s.lockout)
	}

	opts := options.Update().SetUpsert(true)
	_, _ = s.c.UpdateOne(ctx, bson.M{"_id": clientIP}, bson.M{"$set": update}, opts)
}

// ClearOnSuccess drops the failure record after a successful exchange.
func (s *Store) ClearOnSuccess(ctx context.Context, clientIP string) {
	_, _ = s.c.DeleteOne(ctx, bson.M{"_id": clientIP})
}

// DeleteStale removes records whose last failure is older than the cutoff.
func (s *Store) DeleteStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	res, err := s.c.DeleteMany(ctx, bson.M{"last_failure": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
