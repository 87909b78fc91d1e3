// internal/domain/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created from a successful identity-provider session
// exchange. Identity is keyed by email at upsert time and by ID thereafter.
// Users are never deleted; name and picture are refreshed on each login.
type User struct {
	ID      string `bson:"_id" json:"user_id"`
	Email   string `bson:"email" json:"email"`
	Name    string `bson:"name" json:"name"`
	Picture string `bson:"picture,omitempty" json:"picture,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewUserID mints a user identifier. The "user_" prefix keeps user IDs
// distinguishable from other entity IDs in logs and audit records.
func NewUserID() string {
	return "user_" + uuid.NewString()
}
