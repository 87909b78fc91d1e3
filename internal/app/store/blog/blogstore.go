// internal/app/store/blog/blogstore.go
package blog

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/fairway/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no post matches the slug or id.
	ErrNotFound = errors.New("blog post not found")
	// ErrDuplicateSlug is returned when creating a post whose slug is taken.
	ErrDuplicateSlug = errors.New("blog post slug already exists")
)

// Store provides access to the blog_posts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a blog post store backed by the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blog_posts")}
}

// ListPublished returns published posts newest first. An empty category
// returns all categories.
func (s *Store) ListPublished(ctx context.Context, category string) ([]models.BlogPost, error) {
	filter := bson.M{"published": true}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var posts []models.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBySlug fetches a published post by slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.c.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByID fetches a post by id regardless of published state.
func (s *Store) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post. The id is generated; the caller-supplied slug
// must be unique or ErrDuplicateSlug is returned.
func (s *Store) Create(ctx context.Context, post *models.BlogPost) error {
	now := time.Now().UTC()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := s.c.InsertOne(ctx, post)
	if wafflemongo.IsDup(err) {
		return ErrDuplicateSlug
	}
	return err
}

// UpdateInput holds optional post fields. Only non-nil fields are written.
type UpdateInput struct {
	Slug      *string
	Title     map[string]string
	Excerpt   map[string]string
	Content   map[string]string
	Image     *string
	Author    *string
	Category  *string
	Tags      []string
	Published *bool
}

// Update applies the provided fields to the post and stamps updated_at.
func (s *Store) Update(ctx context.Context, id string, in UpdateInput) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Slug != nil {
		set["slug"] = *in.Slug
	}
	if in.Title != nil {
		set["title"] = in.Title
	}
	if in.Excerpt != nil {
		set["excerpt"] = in.Excerpt
	}
	if in.Content != nil {
		set["content"] = in.Content
	}
	if in.Image != nil {
		set["image"] = *in.Image
	}
	if in.Author != nil {
		set["author"] = *in.Author
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Tags != nil {
		set["tags"] = in.Tags
	}
	if in.Published != nil {
		set["published"] = *in.Published
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if wafflemongo.IsDup(err) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the post permanently.
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
