// internal/app/store/apistats/apistatsstore.go
package apistats

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatType identifies which route group a request hit.
type StatType string

// Stat types recorded by the API middleware.
const (
	StatTypeAuth       StatType = "auth"
	StatTypeContent    StatType = "content"
	StatTypeReviews    StatType = "reviews"
	StatTypeContact    StatType = "contact"
	StatTypeNewsletter StatType = "newsletter"
)

// Bucket is one time-bucketed counter document. Requests landing in the
// same bucket and stat type increment the same document.
type Bucket struct {
	Bucket         time.Time `bson:"bucket" json:"bucket"`
	StatType       StatType  `bson:"stat_type" json:"stat_type"`
	BucketDuration string    `bson:"bucket_duration" json:"bucket_duration"`

	Count      int64 `bson:"count" json:"count"`
	ErrorCount int64 `bson:"error_count" json:"error_count"`

	MinLatencyMS int64 `bson:"min_latency_ms" json:"min_latency_ms"`
	MaxLatencyMS int64 `bson:"max_latency_ms" json:"max_latency_ms"`
	SumLatencyMS int64 `bson:"sum_latency_ms" json:"sum_latency_ms"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Store provides access to the api_stats collection.
type Store struct {
	c *mongo.Collection
}

// New creates an API stats store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("api_stats")}
}

// TruncateToBucket floors t to the start of its bucket.
func TruncateToBucket(t time.Time, d time.Duration) time.Time {
	return t.UTC().Truncate(d)
}

// Record folds one request into its bucket via upsert. isError counts 4xx
// and 5xx responses separately from the total.
func (s *Store) Record(ctx context.Context, statType StatType, at time.Time, latency time.Duration, isError bool, bucketDuration time.Duration) error {
	bucket := TruncateToBucket(at, bucketDuration)
	ms := latency.Milliseconds()

	inc := bson.M{"count": 1, "sum_latency_ms": ms}
	if isError {
		inc["error_count"] = 1
	}

	filter := bson.M{
		"bucket":          bucket,
		"stat_type":       statType,
		"bucket_duration": bucketDuration.String(),
	}
	update := bson.M{
		"$inc": inc,
		"$min": bson.M{"min_latency_ms": ms},
		"$max": bson.M{"max_latency_ms": ms},
		"$set": bson.M{"updated_at": time.Now().UTC()},
		"$setOnInsert": bson.M{
			"bucket":          bucket,
			"stat_type":       statType,
			"bucket_duration": bucketDuration.String(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetRange returns buckets for a stat type within [from, to), oldest first.
func (s *Store) GetRange(ctx context.Context, statType StatType, from, to time.Time) ([]Bucket, error) {
	filter := bson.M{
		"stat_type": statType,
		"bucket":    bson.M{"$gte": from.UTC(), "$lt": to.UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "bucket", Value: 1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var buckets []Bucket
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// Summary totals one stat type across a time range.
type Summary struct {
	StatType     StatType `bson:"_id" json:"stat_type"`
	Count        int64    `bson:"count" json:"count"`
	ErrorCount   int64    `bson:"error_count" json:"error_count"`
	SumLatencyMS int64    `bson:"sum_latency_ms" json:"sum_latency_ms"`
}

// GetSummary aggregates totals per stat type within [from, to).
func (s *Store) GetSummary(ctx context.Context, from, to time.Time) ([]Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"bucket": bson.M{"$gte": from.UTC(), "$lt": to.UTC()},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$stat_type",
			"count":          bson.M{"$sum": "$count"},
			"error_count":    bson.M{"$sum": "$error_count"},
			"sum_latency_ms": bson.M{"$sum": "$sum_latency_ms"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []Summary
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOlderThan removes buckets older than the cutoff.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"bucket": bson.M{"$lt": cutoff.UTC()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
