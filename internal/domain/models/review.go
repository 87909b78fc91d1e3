// internal/domain/models/review.go
package models

import "time"

// Review moderation states. A review is created pending and moves to
// approved or rejected exactly once; there is no transition back.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// IsValidReviewStatus reports whether s is a known moderation status.
func IsValidReviewStatus(s string) bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// UserReview is a review submitted by an authenticated user. The author's
// name, email, and picture are denormalized onto the review at submission
// time so the review keeps showing the name as it was when written.
type UserReview struct {
	ID          string `bson:"_id" json:"review_id"`
	UserID      string `bson:"user_id" json:"user_id"`
	UserName    string `bson:"user_name" json:"user_name"`
	UserEmail   string `bson:"user_email" json:"user_email"`
	UserPicture string `bson:"user_picture,omitempty" json:"user_picture,omitempty"`

	Rating     int    `bson:"rating" json:"rating"`
	ReviewText string `bson:"review_text" json:"review_text"`
	Platform   string `bson:"platform" json:"platform"`
	Language   string `bson:"language,omitempty" json:"language,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`

	Status     string     `bson:"status" json:"status"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	ReviewedAt *time.Time `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
}
