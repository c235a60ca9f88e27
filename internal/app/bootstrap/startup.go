// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	campaignstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/campaigns"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// sweeper is the background campaign finalizer, started here and
// stopped in Shutdown.
var sweeper *workers.OutcomeSweep

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// It applies timeout overrides and starts the outcome sweep, including
// an immediate pass so campaigns that became due while the service was
// down are finalized right away.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeout overrides applied", zap.Int("count", n))
	}

	sweeper = workers.NewOutcomeSweep(campaignstore.New(deps.MongoDatabase), logger, appCfg.SweepInterval)
	sweeper.Sweep()
	sweeper.Start()
	return nil
}
