// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminusersfeature "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/features/adminusers"
	campaignsfeature "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/features/campaigns"
	donationsfeature "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/features/donations"
	healthfeature "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/features/health"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. FundRise applies the bearer
// token middleware globally and mounts the campaign, donation, admin,
// and health feature routers under /api.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier, err := auth.NewVerifier(appCfg.JWTSecret, logger)
	if err != nil {
		logger.Error("token verifier init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads the token's principal into context
	// when a valid bearer token is present; anonymous otherwise.
	r.Use(verifier.LoadPrincipal)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	campaignsHandler := campaignsfeature.New(deps.MongoDatabase, logger)
	r.Mount("/api/campaigns", campaignsfeature.Routes(campaignsHandler))

	donationsHandler := donationsfeature.New(deps.MongoClient, deps.MongoDatabase, logger)
	r.Mount("/api/donations", donationsfeature.Routes(donationsHandler))

	adminUsersHandler := adminusersfeature.New(deps.MongoDatabase, logger)
	r.Mount("/api/admin/users", adminusersfeature.Routes(adminUsersHandler))

	return r, nil
}
