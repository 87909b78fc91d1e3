// internal/domain/models/blogpost.go
package models

import "time"

// BlogPost is an article with multi-language title, excerpt, and content
// maps keyed by language code. Posts are addressed publicly by slug.
type BlogPost struct {
	ID       string            `bson:"_id" json:"id"`
	Slug     string            `bson:"slug" json:"slug"`
	Title    map[string]string `bson:"title" json:"title"`
	Excerpt  map[string]string `bson:"excerpt" json:"excerpt"`
	Content  map[string]string `bson:"content" json:"content"`
	Image    string            `bson:"image" json:"image"`
	Author   string            `bson:"author" json:"author"`
	Category string            `bson:"category" json:"category"`
	Tags     []string          `bson:"tags" json:"tags"`

	Published bool `bson:"published" json:"published"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
