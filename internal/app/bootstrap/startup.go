// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	apistatsstore "github.com/dalemusser/fairway/internal/app/store/apistats"
	"github.com/dalemusser/fairway/internal/app/store/audit"
	"github.com/dalemusser/fairway/internal/app/store/ratelimit"
	sessionstore "github.com/dalemusser/fairway/internal/app/store/sessions"
	"github.com/dalemusser/fairway/internal/app/system/tasks"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// Returning a non-nil error will abort startup and prevent the server from
// starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	startTaskRunner(appCfg, deps, logger)
	return nil
}

// taskRunner is the global task runner instance, used for graceful shutdown.
var taskRunner *tasks.Runner

// startTaskRunner initializes and starts the background task runner.
func startTaskRunner(appCfg AppConfig, deps DBDeps, logger *zap.Logger) {
	db := deps.MongoDatabase
	taskRunner = tasks.New(logger)

	taskRunner.Register(tasks.ExpiredSessionCleanupJob(sessionstore.New(db), logger))
	taskRunner.Register(tasks.RateLimitCleanupJob(
		ratelimit.New(db, appCfg.AuthMaxFailures, appCfg.AuthFailureWindow, appCfg.AuthLockout),
		logger,
	))
	taskRunner.Register(tasks.APIStatsCleanupJob(apistatsstore.New(db), appCfg.StatsRetention, logger))
	taskRunner.Register(tasks.AuditLogCleanupJob(audit.New(db), appCfg.AuditRetention, logger))

	taskRunner.Start()
}
