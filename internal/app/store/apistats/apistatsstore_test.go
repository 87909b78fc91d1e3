package apistats

import (
	"testing"
	"time"

	"github.com/dalemusser/fairway/internal/testutil"
)

func TestTruncateToBucket(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 42, 17, 0, time.UTC)

	got := TruncateToBucket(at, time.Hour)
	want := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TruncateToBucket(1h) = %v, want %v", got, want)
	}

	got = TruncateToBucket(at, 15*time.Minute)
	want = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TruncateToBucket(15m) = %v, want %v", got, want)
	}
}

func TestRecord_FoldsIntoOneBucket(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	at := time.Date(2026, 3, 14, 15, 5, 0, 0, time.UTC)
	samples := []struct {
		latency time.Duration
		isError bool
	}{
		{10 * time.Millisecond, false},
		{30 * time.Millisecond, true},
		{20 * time.Millisecond, false},
	}
	for _, s := range samples {
		if err := store.Record(ctx, StatTypeAuth, at, s.latency, s.isError, time.Hour); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
		at = at.Add(time.Minute)
	}

	buckets, err := store.GetRange(ctx, StatTypeAuth, at.Add(-2*time.Hour), at.Add(time.Hour))
	if err != nil {
		t.Fatalf("GetRange() error = %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("GetRange() len = %d, want 1 (same hour folds into one bucket)", len(buckets))
	}

	b := buckets[0]
	if b.Count != 3 {
		t.Errorf("count = %d, want 3", b.Count)
	}
	if b.ErrorCount != 1 {
		t.Errorf("error_count = %d, want 1", b.ErrorCount)
	}
	if b.MinLatencyMS != 10 || b.MaxLatencyMS != 30 {
		t.Errorf("latency min/max = %d/%d, want 10/30", b.MinLatencyMS, b.MaxLatencyMS)
	}
	if b.SumLatencyMS != 60 {
		t.Errorf("sum_latency_ms = %d, want 60", b.SumLatencyMS)
	}
}

func TestGetSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if err := store.Record(ctx, StatTypeAuth, at, 5*time.Millisecond, false, time.Hour); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := store.Record(ctx, StatTypeReviews, at, 8*time.Millisecond, true, time.Hour); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := store.Record(ctx, StatTypeReviews, at.Add(time.Hour), 12*time.Millisecond, false, time.Hour); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	summaries, err := store.GetSummary(ctx, at.Add(-time.Hour), at.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("GetSummary() len = %d, want 2", len(summaries))
	}

	var reviews *Summary
	for i := range summaries {
		if summaries[i].StatType == StatTypeReviews {
			reviews = &summaries[i]
		}
	}
	if reviews == nil {
		t.Fatal("GetSummary() missing reviews stat type")
	}
	if reviews.Count != 2 || reviews.ErrorCount != 1 {
		t.Errorf("reviews count/errors = %d/%d, want 2/1", reviews.Count, reviews.ErrorCount)
	}
}

func TestDeleteOlderThan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	old := time.Now().UTC().Add(-100 * 24 * time.Hour)
	recent := time.Now().UTC()
	if err := store.Record(ctx, StatTypeContent, old, time.Millisecond, false, time.Hour); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := store.Record(ctx, StatTypeContent, recent, time.Millisecond, false, time.Hour); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	deleted, err := store.DeleteOlderThan(ctx, time.Now().UTC().Add(-90*24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}
