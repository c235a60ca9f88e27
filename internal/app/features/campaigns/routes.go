// internal/app/features/campaigns/routes.go
package campaigns

import (
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/ratelimit"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the campaign endpoints under whatever base path the
// caller chooses (typically "/api/campaigns" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public browsing.
	r.Get("/", h.HandleList)

	// The counters are unauthenticated and count every call, so they
	// get a per-IP ceiling against trivial inflation.
	counterLimit := ratelimit.New(60, time.Minute)
	r.Group(func(pr chi.Router) {
		pr.Use(counterLimit.Middleware)
		pr.Post("/{id}/view", h.HandleView)
		pr.Post("/{id}/share", h.HandleShare)
	})

	// Creator routes.
	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireRole(models.RoleCreator, models.RoleAdmin))
		pr.Post("/", h.HandleCreate)
		pr.Get("/my-campaigns", h.HandleMyCampaigns)
	})

	// Owner routes; ownership is checked in the handlers against the
	// loaded campaign, so admins can act on behalf of creators.
	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireAuth)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	// Moderation.
	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireRole(models.RoleAdmin))
		pr.Get("/admin/pending", h.HandleListPending)
		pr.Put("/{id}/approve", h.HandleApprove)
		pr.Put("/{id}/reject", h.HandleReject)
	})

	// Registered last so static segments above win the match.
	r.Get("/{slug}", h.HandleGetBySlug)

	return r
}
