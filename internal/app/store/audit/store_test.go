package audit

import (
	"testing"
	"time"

	"github.com/dalemusser/fairway/internal/testutil"
)

func TestLogAndQuery(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := "user_test"
	events := []Event{
		{Category: CategoryAuth, EventType: EventSessionExchangeSuccess, UserID: &userID, Success: true},
		{Category: CategoryAuth, EventType: EventSessionExchangeFailure, Success: false, FailureReason: "invalid session"},
		{Category: CategoryModeration, EventType: EventReviewApproved, Success: true, Details: map[string]string{"review_id": "r1"}},
	}
	for _, e := range events {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	}

	all, err := store.Query(ctx, QueryFilter{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Query() len = %d, want 3", len(all))
	}
	for _, e := range all {
		if e.ID == "" {
			t.Error("Log() should assign an event id")
		}
		if e.CreatedAt.IsZero() {
			t.Error("Log() should stamp created_at")
		}
	}

	authOnly, err := store.Query(ctx, QueryFilter{Category: CategoryAuth})
	if err != nil {
		t.Fatalf("Query(auth) error = %v", err)
	}
	if len(authOnly) != 2 {
		t.Errorf("Query(auth) len = %d, want 2", len(authOnly))
	}

	byUser, err := store.Query(ctx, QueryFilter{UserID: userID})
	if err != nil {
		t.Fatalf("Query(user) error = %v", err)
	}
	if len(byUser) != 1 || byUser[0].EventType != EventSessionExchangeSuccess {
		t.Errorf("Query(user) = %v, want the one success event", byUser)
	}
}

func TestDeleteOlderThan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Log(ctx, Event{Category: CategoryContent, EventType: EventContentCreated, Success: true}); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	deleted, err := store.DeleteOlderThan(ctx, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan() error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0 (event is recent)", deleted)
	}

	deleted, err = store.DeleteOlderThan(ctx, time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}
