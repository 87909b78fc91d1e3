// internal/app/system/validators/validators.go

// Package validators attaches JSON-Schema validation to collections whose
// documents have invariants worth enforcing at the database layer (review
// ratings and statuses, partner offer types, required emails).
package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureAll creates collections and attaches their validators. Backends
// that do not support collMod (DocumentDB and friends) are skipped rather
// than treated as fatal.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", coll, err))
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", coll, err))
		}
	}

	ensure("users", usersSchema())
	ensure("user_sessions", sessionsSchema())
	ensure("golf_courses", nil)
	ensure("partner_offers", partnerOffersSchema())
	ensure("blog_posts", nil)
	ensure("user_reviews", userReviewsSchema())
	ensure("contact_inquiries", contactInquiriesSchema())
	ensure("newsletter_subscriptions", newsletterSchema())
	ensure("auth_rate_limits", nil)
	ensure("audit_logs", nil)
	ensure("api_stats", nil)

	if len(problems) > 0 {
		return fmt.Errorf("ensuring validators: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ensureCollection creates the collection if it does not already exist.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if len(names) > 0 {
		return nil
	}

	err = db.CreateCollection(ctx, name)
	if err != nil && isNamespaceExistsErr(err) {
		return nil
	}
	return err
}

// setValidator attaches the schema with moderate validation, so existing
// documents are only checked when updated.
func setValidator(ctx context.Context, db *mongo.Database, coll string, schema bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: coll},
		{Key: "validator", Value: schema},
		{Key: "validationLevel", Value: "moderate"},
	}

	err := db.RunCommand(ctx, cmd).Err()
	if err != nil && isUnsupportedCommandErr(err) {
		return nil
	}
	return err
}

func isNamespaceExistsErr(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 48 // NamespaceExists
	}
	return false
}

func isUnsupportedCommandErr(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// 59: CommandNotFound, 115: CommandNotSupported
		return cmdErr.Code == 59 || cmdErr.Code == 115
	}
	return strings.Contains(err.Error(), "not supported")
}

func usersSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "email", "name"},
		"properties": bson.M{
			"_id":   bson.M{"bsonType": "string"},
			"email": bson.M{"bsonType": "string"},
			"name":  bson.M{"bsonType": "string"},
		},
	}}
}

func sessionsSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "session_token", "user_id", "expires_at"},
		"properties": bson.M{
			"session_token": bson.M{"bsonType": "string"},
			"user_id":       bson.M{"bsonType": "string"},
			"expires_at":    bson.M{"bsonType": "date"},
		},
	}}
}

func partnerOffersSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "name", "type"},
		"properties": bson.M{
			"type": bson.M{"enum": []string{"hotel", "restaurant", "beach_club", "cafe_bar"}},
		},
	}}
}

func userReviewsSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "user_id", "rating", "review_text", "status"},
		"properties": bson.M{
			"rating": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  5,
			},
			"status": bson.M{"enum": []string{"pending", "approved", "rejected"}},
		},
	}}
}

func contactInquiriesSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "name", "email", "message"},
	}}
}

func newsletterSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "email"},
	}}
}
