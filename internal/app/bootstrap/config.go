// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "FAIRWAY"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_cookie_name, etc.
//   - Environment variables: FAIRWAY_MONGO_URI, FAIRWAY_SESSION_COOKIE_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_cookie_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "fairway", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Identity provider
	{Name: "auth_provider_url", Default: "", Desc: "Base URL of the identity provider used for session exchange"},

	// Session configuration
	{Name: "session_cookie_name", Default: "session_token", Desc: "Session cookie name"},
	{Name: "session_ttl", Default: "168h", Desc: "Session lifetime (e.g., 24h, 168h)"},

	// Admin API key for content management and moderation endpoints
	{Name: "admin_api_key", Default: "", Desc: "API key for admin endpoints (empty disables them)"},

	// Rate limiting for session exchange
	{Name: "rate_limit_enabled", Default: true, Desc: "Enable rate limiting for session exchange attempts"},
	{Name: "auth_max_failures", Default: 10, Desc: "Max failed session exchanges before lockout"},
	{Name: "auth_failure_window", Default: "15m", Desc: "Time window for counting failed exchanges"},
	{Name: "auth_lockout", Default: "15m", Desc: "Lockout duration after exceeding limit"},

	// API stats and retention
	{Name: "api_stats_bucket", Default: "1h", Desc: "API stats bucket duration (e.g., '1m', '15m', '1h')"},
	{Name: "stats_retention", Default: "2160h", Desc: "How long API stat buckets are kept (default 90 days)"},
	{Name: "audit_retention", Default: "4320h", Desc: "How long audit events are kept (default 180 days)"},

	// Content seeding
	{Name: "seed_content", Default: true, Desc: "Seed default courses, offers, posts, and reviews on startup"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "", Desc: "SMTP server host (empty disables outgoing mail)"},
	{Name: "mail_smtp_port", Default: 587, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "", Desc: "From email address"},
	{Name: "mail_from_name", Default: "Mallorca Golf", Desc: "From display name"},
	{Name: "contact_notify_email", Default: "", Desc: "Address that receives contact inquiry notifications"},

	{Name: "site_name", Default: "Mallorca Golf", Desc: "Site name used in outgoing email"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AuthProviderURL: appValues.String("auth_provider_url"),

		SessionCookieName: appValues.String("session_cookie_name"),
		SessionTTL:        appValues.Duration("session_ttl", 168*time.Hour),

		AdminAPIKey: appValues.String("admin_api_key"),

		RateLimitEnabled:  appValues.Bool("rate_limit_enabled"),
		AuthMaxFailures:   appValues.Int("auth_max_failures"),
		AuthFailureWindow: appValues.Duration("auth_failure_window", 15*time.Minute),
		AuthLockout:       appValues.Duration("auth_lockout", 15*time.Minute),

		APIStatsBucket: appValues.Duration("api_stats_bucket", time.Hour),
		StatsRetention: appValues.Duration("stats_retention", 90*24*time.Hour),
		AuditRetention: appValues.Duration("audit_retention", 180*24*time.Hour),

		SeedContent: appValues.Bool("seed_content"),

		MailSMTPHost:       appValues.String("mail_smtp_host"),
		MailSMTPPort:       appValues.Int("mail_smtp_port"),
		MailSMTPUser:       appValues.String("mail_smtp_user"),
		MailSMTPPass:       appValues.String("mail_smtp_pass"),
		MailFrom:           appValues.String("mail_from"),
		MailFromName:       appValues.String("mail_from_name"),
		ContactNotifyEmail: appValues.String("contact_notify_email"),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AuthProviderURL == "" {
		logger.Warn("auth_provider_url is not set; session exchange will reject all logins")
	}
	if appCfg.AdminAPIKey == "" {
		logger.Warn("admin_api_key is not set; admin endpoints are disabled")
	}

	if appCfg.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", appCfg.SessionTTL)
	}

	return nil
}
