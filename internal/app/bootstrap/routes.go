// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	authapifeature "github.com/dalemusser/fairway/internal/app/features/authapi"
	blogfeature "github.com/dalemusser/fairway/internal/app/features/blog"
	contactfeature "github.com/dalemusser/fairway/internal/app/features/contact"
	coursesfeature "github.com/dalemusser/fairway/internal/app/features/courses"
	healthfeature "github.com/dalemusser/fairway/internal/app/features/health"
	newsletterfeature "github.com/dalemusser/fairway/internal/app/features/newsletter"
	partnersfeature "github.com/dalemusser/fairway/internal/app/features/partners"
	reviewsfeature "github.com/dalemusser/fairway/internal/app/features/reviews"
	apistatsstore "github.com/dalemusser/fairway/internal/app/store/apistats"
	"github.com/dalemusser/fairway/internal/app/store/audit"
	blogstore "github.com/dalemusser/fairway/internal/app/store/blog"
	contactstore "github.com/dalemusser/fairway/internal/app/store/contact"
	coursestore "github.com/dalemusser/fairway/internal/app/store/courses"
	newsletterstore "github.com/dalemusser/fairway/internal/app/store/newsletter"
	partnerstore "github.com/dalemusser/fairway/internal/app/store/partners"
	"github.com/dalemusser/fairway/internal/app/store/ratelimit"
	reviewstore "github.com/dalemusser/fairway/internal/app/store/reviews"
	sessionstore "github.com/dalemusser/fairway/internal/app/store/sessions"
	userstore "github.com/dalemusser/fairway/internal/app/store/users"
	"github.com/dalemusser/fairway/internal/app/system/apistats"
	"github.com/dalemusser/fairway/internal/app/system/auditlog"
	"github.com/dalemusser/fairway/internal/app/system/auth"
	"github.com/dalemusser/fairway/internal/app/system/identity"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. All routes here are JSON API routes for
// the separate frontend; there is no server-rendered UI.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	// Stores
	users := userstore.New(db)
	sessions := sessionstore.New(db)
	courses := coursestore.New(db)
	partners := partnerstore.New(db)
	blogPosts := blogstore.New(db)
	reviews := reviewstore.New(db)
	contacts := contactstore.New(db)
	subscriptions := newsletterstore.New(db)

	// Session manager. Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr := auth.NewManager(sessions, users, appCfg.SessionCookieName, appCfg.SessionTTL, secure, logger)

	// Identity provider client for session exchange.
	idp := identity.New(appCfg.AuthProviderURL, logger)

	// Rate limiting for session exchange attempts (nil if disabled).
	var rateLimitStore *ratelimit.Store
	if appCfg.RateLimitEnabled {
		rateLimitStore = ratelimit.New(db, appCfg.AuthMaxFailures, appCfg.AuthFailureWindow, appCfg.AuthLockout)
	}

	// Audit logger for security and moderation event tracking.
	auditLogger := auditlog.New(audit.New(db), logger)

	// API stats recorder for per-endpoint-group request statistics.
	apiStatsRecorder := apistats.NewRecorder(apistatsstore.New(db), logger, appCfg.APIStatsBucket)

	r := chi.NewRouter()

	// Global middleware: request timeout, CORS, and security headers apply
	// to every route. Feature routers add their own CORS echo and stats.
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORSFromConfig(coreCfg))
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Authentication
	authHandler := authapifeature.NewHandler(idp, users, sessions, sessionMgr, rateLimitStore, auditLogger, logger)
	r.Mount("/api/auth", authapifeature.Routes(authHandler, sessionMgr, apiStatsRecorder))

	// Golf courses
	coursesHandler := coursesfeature.NewHandler(courses, auditLogger, logger)
	r.Mount("/api/golf-courses", coursesfeature.Routes(coursesHandler, appCfg.AdminAPIKey, apiStatsRecorder, logger))

	// Partner offers
	partnersHandler := partnersfeature.NewHandler(partners, auditLogger, logger)
	r.Mount("/api/partner-offers", partnersfeature.Routes(partnersHandler, appCfg.AdminAPIKey, apiStatsRecorder, logger))

	// Blog
	blogHandler := blogfeature.NewHandler(blogPosts, auditLogger, logger)
	r.Mount("/api/blog", blogfeature.Routes(blogHandler, appCfg.AdminAPIKey, apiStatsRecorder, logger))

	// Reviews and moderation
	reviewsHandler := reviewsfeature.NewHandler(reviews, auditLogger, logger)
	r.Mount("/api/reviews", reviewsfeature.Routes(reviewsHandler, sessionMgr, appCfg.AdminAPIKey, apiStatsRecorder, logger))

	// Contact inquiries
	contactHandler := contactfeature.NewHandler(contacts, deps.Mailer, appCfg.ContactNotifyEmail, logger)
	r.Mount("/api/contact", contactfeature.Routes(contactHandler, appCfg.AdminAPIKey, apiStatsRecorder, logger))

	// Newsletter
	newsletterHandler := newsletterfeature.NewHandler(subscriptions, deps.Mailer, appCfg.SiteName, logger)
	r.Mount("/api/newsletter", newsletterfeature.Routes(newsletterHandler, appCfg.AdminAPIKey, apiStatsRecorder, logger))

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	return r, nil
}
