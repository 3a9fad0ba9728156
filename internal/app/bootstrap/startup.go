// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	tripstore "github.com/pasaporteapp/pasaporte/internal/app/store/trips"
	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/app/system/watch"
	"github.com/pasaporteapp/pasaporte/internal/app/system/workers"
	"go.uber.org/zap"
)

// Long-lived pieces created during Startup and torn down in Shutdown.
var (
	tripHub    *watch.Hub
	reconciler *workers.RosterReconcile
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// It configures timeouts, initializes the session store, and starts the
// roster reconciliation worker. One synchronous sweep runs before the
// server accepts traffic so a crash never leaves overfilled trips
// visible past a restart.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeouts configured from environment",
			zap.Int("overrides", n),
			zap.Duration("short", cur.Short),
			zap.Duration("medium", cur.Medium),
			zap.Duration("long", cur.Long),
			zap.Duration("batch", cur.Batch))
	}

	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		return err
	}

	tripHub = watch.NewHub(logger)

	reconciler = workers.NewRosterReconcile(
		tripstore.New(deps.MongoDatabase),
		tripHub,
		logger,
		appCfg.ReconcileInterval,
	)
	if err := reconciler.ReconcileOnce(ctx); err != nil {
		logger.Warn("initial roster sweep failed", zap.Error(err))
	}
	reconciler.Start()

	return nil
}
