// internal/domain/models/contact.go
package models

import "time"

// ContactInquiry is a message submitted through the public contact form.
type ContactInquiry struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Country     string    `bson:"country" json:"country"`
	Message     string    `bson:"message" json:"message"`
	InquiryType string    `bson:"inquiry_type" json:"inquiry_type"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
