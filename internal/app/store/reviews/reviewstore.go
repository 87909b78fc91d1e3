// internal/app/store/reviews/reviewstore.go
package reviews

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fairway/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no review matches the id.
var ErrNotFound = errors.New("review not found")

// Store provides access to the user_reviews collection.
type Store struct {
	c *mongo.Collection
}

// New creates a review store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_reviews")}
}

// Create inserts a review in pending state with a generated id. The author
// fields on the review must already be filled in by the caller.
func (s *Store) Create(ctx context.Context, review *models.UserReview) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	review.Status = models.ReviewStatusPending
	review.CreatedAt = time.Now().UTC()
	review.ReviewedAt = nil

	_, err := s.c.InsertOne(ctx, review)
	return err
}

// GetByID fetches a review by id.
func (s *Store) GetByID(ctx context.Context, id string) (*models.UserReview, error) {
	var review models.UserReview
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByStatus returns reviews in the given status, newest first. A limit
// of zero or less means no cap.
func (s *Store) ListByStatus(ctx context.Context, status string, limit int64) ([]models.UserReview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.c.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.UserReview
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListApproved returns approved reviews newest first, optionally filtered
// by platform.
func (s *Store) ListApproved(ctx context.Context, platform string, limit int64) ([]models.UserReview, error) {
	filter := bson.M{"status": models.ReviewStatusApproved}
	if platform != "" {
		filter["platform"] = platform
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []models.UserReview
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUser returns the user's own reviews newest first, whatever their
// moderation state.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.UserReview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.UserReview
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetStatus stamps the review with the given status and a reviewed_at time.
// The write matches on id alone, so re-moderating an already decided review
// overwrites the earlier decision.
func (s *Store) SetStatus(ctx context.Context, id, status string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":      status,
		"reviewed_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats summarizes approved reviews.
type Stats struct {
	TotalReviews       int64         `json:"total_reviews"`
	AverageRating      float64       `json:"average_rating"`
	RatingDistribution map[int]int64 `json:"rating_distribution"`
}

// GetStats aggregates count, mean rating, and per-star counts over approved
// reviews. An empty collection yields zeroes, not an error.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.ReviewStatusApproved}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$rating",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Rating int   `bson:"_id"`
		Count  int64 `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &Stats{RatingDistribution: make(map[int]int64)}
	var weighted int64
	for _, row := range rows {
		stats.TotalReviews += row.Count
		stats.RatingDistribution[row.Rating] = row.Count
		weighted += int64(row.Rating) * row.Count
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(weighted) / float64(stats.TotalReviews)
	}
	return stats, nil
}
