// internal/app/store/courses/coursestore.go
package courses

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fairway/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no course matches the id.
	ErrNotFound = errors.New("golf course not found")
	// ErrDuplicateID is returned when creating a course whose id is taken.
	ErrDuplicateID = errors.New("golf course id already exists")
)

// Store provides access to the golf_courses collection.
type Store struct {
	c *mongo.Collection
}

// New creates a golf course store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("golf_courses")}
}

// ListActive returns active courses ordered by display_order.
func (s *Store) ListActive(ctx context.Context) ([]models.GolfCourse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	var courses []models.GolfCourse
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByID fetches a course by its slug id, active or not.
func (s *Store) GetByID(ctx context.Context, id string) (*models.GolfCourse, error) {
	var course models.GolfCourse
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course. The caller chooses the slug id; a clash with
// an existing id returns ErrDuplicateID.
func (s *Store) Create(ctx context.Context, course *models.GolfCourse) error {
	now := time.Now().UTC()
	course.IsActive = true
	course.CreatedAt = now
	course.UpdatedAt = now
	if course.Features == nil {
		course.Features = []string{}
	}

	_, err := s.c.InsertOne(ctx, course)
	if wafflemongo.IsDup(err) {
		return ErrDuplicateID
	}
	return err
}

// UpdateInput holds optional course fields. Only non-nil fields are written.
type UpdateInput struct {
	Name         *string
	Description  map[string]string
	Image        *string
	Holes        *int
	Par          *int
	PriceFrom    *float64
	Location     *string
	FullAddress  *string
	Phone        *string
	Features     []string
	BookingURL   *string
	IsActive     *bool
	DisplayOrder *int
}

// Update applies the provided fields to the course and stamps updated_at.
func (s *Store) Update(ctx context.Context, id string, in UpdateInput) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Description != nil {
		set["description"] = in.Description
	}
	if in.Image != nil {
		set["image"] = *in.Image
	}
	if in.Holes != nil {
		set["holes"] = *in.Holes
	}
	if in.Par != nil {
		set["par"] = *in.Par
	}
	if in.PriceFrom != nil {
		set["price_from"] = *in.PriceFrom
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.FullAddress != nil {
		set["full_address"] = *in.FullAddress
	}
	if in.Phone != nil {
		set["phone"] = *in.Phone
	}
	if in.Features != nil {
		set["features"] = in.Features
	}
	if in.BookingURL != nil {
		set["booking_url"] = *in.BookingURL
	}
	if in.IsActive != nil {
		set["is_active"] = *in.IsActive
	}
	if in.DisplayOrder != nil {
		set["display_order"] = *in.DisplayOrder
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete deactivates the course. The document stays in the collection
// and remains reachable by id.
func (s *Store) SoftDelete(ctx context.Context, id string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder assigns display_order by position in ids (first id gets 0).
// Each write stands alone; a failure partway leaves earlier assignments in
// place. Returns the number of courses that matched.
func (s *Store) Reorder(ctx context.Context, ids []string) (int64, error) {
	now := time.Now().UTC()
	var matched int64
	for i, id := range ids {
		res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
			"display_order": i,
			"updated_at":    now,
		}})
		if err != nil {
			return matched, err
		}
		matched += res.MatchedCount
	}
	return matched, nil
}
