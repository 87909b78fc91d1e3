// internal/domain/models/partneroffer.go
package models

import "time"

// Partner offer types. These match the categories the site filters on.
const (
	OfferTypeHotel      = "hotel"
	OfferTypeRestaurant = "restaurant"
	OfferTypeBeachClub  = "beach_club"
	OfferTypeCafeBar    = "cafe_bar"
)

// AllOfferTypes returns the valid partner offer types.
func AllOfferTypes() []string {
	return []string{OfferTypeHotel, OfferTypeRestaurant, OfferTypeBeachClub, OfferTypeCafeBar}
}

// IsValidOfferType reports whether t is a known partner offer type.
func IsValidOfferType(t string) bool {
	switch t {
	case OfferTypeHotel, OfferTypeRestaurant, OfferTypeBeachClub, OfferTypeCafeBar:
		return true
	}
	return false
}

// PartnerOffer is a promoted deal from a partner business (hotel, restaurant,
// beach club, cafe/bar). Description and Deal are keyed by language code.
type PartnerOffer struct {
	ID              string            `bson:"_id" json:"id"`
	Name            string            `bson:"name" json:"name"`
	Type            string            `bson:"type" json:"type"`
	Description     map[string]string `bson:"description" json:"description"`
	Image           string            `bson:"image" json:"image"`
	Location        string            `bson:"location" json:"location"`
	Deal            map[string]string `bson:"deal" json:"deal"`
	OriginalPrice   *float64          `bson:"original_price,omitempty" json:"original_price,omitempty"`
	OfferPrice      *float64          `bson:"offer_price,omitempty" json:"offer_price,omitempty"`
	DiscountPercent *int              `bson:"discount_percent,omitempty" json:"discount_percent,omitempty"`
	ContactURL      string            `bson:"contact_url" json:"contact_url"`

	IsActive     bool `bson:"is_active" json:"is_active"`
	DisplayOrder int  `bson:"display_order" json:"display_order"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
