// internal/domain/models/golfcourse.go
package models

import "time"

// GolfCourse is a bookable course listing. The ID is a slug-like identifier
// chosen at creation time (e.g. "golf-alcanada") and doubles as the public
// URL path segment. Description is keyed by language code (en, de, fr, se).
type GolfCourse struct {
	ID          string            `bson:"_id" json:"id"`
	Name        string            `bson:"name" json:"name"`
	Description map[string]string `bson:"description" json:"description"`
	Image       string            `bson:"image" json:"image"`
	Holes       int               `bson:"holes" json:"holes"`
	Par         int               `bson:"par" json:"par"`
	PriceFrom   *float64          `bson:"price_from,omitempty" json:"price_from,omitempty"`
	Location    string            `bson:"location" json:"location"`
	FullAddress string            `bson:"full_address,omitempty" json:"full_address,omitempty"`
	Phone       string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Features    []string          `bson:"features" json:"features"`
	BookingURL  string            `bson:"booking_url" json:"booking_url"`

	// Listing state. Deactivated courses stay in the collection but are
	// excluded from public reads.
	IsActive     bool `bson:"is_active" json:"is_active"`
	DisplayOrder int  `bson:"display_order" json:"display_order"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
