// internal/app/system/indexes/indexes.go

// Package indexes creates the MongoDB indexes the stores rely on. EnsureAll
// runs during EnsureSchema, before the HTTP handler is built.
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll creates every index the application needs. Failures are
// collected per collection so one bad collection does not hide the rest.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	type ensureFn struct {
		coll string
		fn   func(context.Context, *mongo.Database) error
	}

	ensures := []ensureFn{
		{"users", ensureUsers},
		{"user_sessions", ensureSessions},
		{"golf_courses", ensureGolfCourses},
		{"partner_offers", ensurePartnerOffers},
		{"blog_posts", ensureBlogPosts},
		{"user_reviews", ensureUserReviews},
		{"contact_inquiries", ensureContactInquiries},
		{"newsletter_subscriptions", ensureNewsletter},
		{"auth_rate_limits", ensureRateLimits},
		{"audit_logs", ensureAuditLogs},
		{"api_stats", ensureAPIStats},
	}

	var problems []string
	for _, e := range ensures {
		if err := e.fn(ctx, db); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", e.coll, err))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("ensuring indexes: %s", strings.Join(problems, "; "))
	}
	return nil
}

// createIndexes creates the models on the collection, tolerating the
// "already exists" responses MongoDB returns for re-runs with identical
// definitions.
func createIndexes(ctx context.Context, c *mongo.Collection, models []mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}
	_, err := c.Indexes().CreateMany(ctx, models)
	if err != nil && isIndexExistsErr(err) {
		return nil
	}
	return err
}

func isIndexExistsErr(err error) bool {
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// 85: IndexOptionsConflict, 86: IndexKeySpecsConflict
		return cmdErr.Code == 85 || cmdErr.Code == 86
	}
	return false
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	})
}

func ensureSessions(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("user_sessions"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_token", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_session_token"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("by_user"),
		},
		{
			// TTL: MongoDB removes documents once expires_at passes.
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("ttl_expires_at"),
		},
	})
}

func ensureGolfCourses(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("golf_courses"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "display_order", Value: 1}},
			Options: options.Index().SetName("active_order"),
		},
	})
}

func ensurePartnerOffers(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("partner_offers"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "type", Value: 1}, {Key: "display_order", Value: 1}},
			Options: options.Index().SetName("active_type_order"),
		},
	})
}

func ensureBlogPosts(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("blog_posts"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_slug"),
		},
		{
			Keys:    bson.D{{Key: "published", Value: 1}, {Key: "category", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("published_category_newest"),
		},
	})
}

func ensureUserReviews(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("user_reviews"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("status_newest"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_user_newest"),
		},
	})
}

func ensureContactInquiries(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("contact_inquiries"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("newest"),
		},
	})
}

func ensureNewsletter(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("newsletter_subscriptions"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	})
}

func ensureRateLimits(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("auth_rate_limits"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "last_failure", Value: 1}},
			Options: options.Index().SetName("by_last_failure"),
		},
	})
}

func ensureAuditLogs(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("audit_logs"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("newest"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("category_newest"),
		},
	})
}

func ensureAPIStats(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db.Collection("api_stats"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "bucket", Value: 1}, {Key: "stat_type", Value: 1}, {Key: "bucket_duration", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_bucket_stat"),
		},
	})
}
