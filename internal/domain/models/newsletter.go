// internal/domain/models/newsletter.go
package models

import "time"

// NewsletterSubscription records one email address on the mailing list.
// Email is unique across the collection.
type NewsletterSubscription struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Language  string    `bson:"language,omitempty" json:"language,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
