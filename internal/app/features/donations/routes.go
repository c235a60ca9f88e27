// internal/app/features/donations/routes.go
package donations

import (
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the donation endpoints under whatever base path the
// caller chooses (typically "/api/donations" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public: a campaign's donation wall.
	r.Get("/campaign/{campaignId}", h.HandleListByCampaign)

	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireAuth)
		pr.Post("/", h.HandleCreate)
		pr.Get("/my-donations", h.HandleMyDonations)
	})

	return r
}
