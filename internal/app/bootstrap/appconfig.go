// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, CORS, and request body size limits. AppConfig
// is where everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Identity provider configuration.
	// Sessions are established by exchanging a provider session ID for the
	// user's profile at <AuthProviderURL>/auth/session-data.
	AuthProviderURL string

	// Session management configuration
	SessionCookieName string        // Cookie name carrying the session token
	SessionTTL        time.Duration // Session lifetime (default: 168h)

	// Admin API key for content management and moderation endpoints.
	// Leave empty to disable all admin routes (they fail closed).
	AdminAPIKey string

	// Rate limiting for session exchange attempts
	RateLimitEnabled  bool          // Enable rate limiting (default: true)
	AuthMaxFailures   int           // Max failed exchanges before lockout (default: 10)
	AuthFailureWindow time.Duration // Window for counting failures (default: 15m)
	AuthLockout       time.Duration // Lockout duration after exceeding limit (default: 15m)

	// API stats configuration
	APIStatsBucket time.Duration // Stats bucket duration (default: 1h)
	StatsRetention time.Duration // How long stat buckets are kept (default: 2160h / 90d)
	AuditRetention time.Duration // How long audit events are kept (default: 4320h / 180d)

	// Content seeding
	SeedContent bool // Seed default courses, offers, posts, and reviews on startup

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty disables auth)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@example.com)
	MailFromName string // From display name

	// ContactNotifyEmail receives a copy of every contact inquiry.
	// Leave empty to disable notifications.
	ContactNotifyEmail string

	// SiteName appears in outgoing email subjects and bodies.
	SiteName string
}
