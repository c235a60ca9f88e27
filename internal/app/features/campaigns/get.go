// internal/app/features/campaigns/get.go
package campaigns

import (
	"context"
	"net/http"
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/policy/campaignpolicy"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGetBySlug processes GET /campaigns/{slug}. Campaigns that are
// not publicly visible are served only to their owner or an admin;
// everyone else gets the same 404 as a nonexistent slug so pending
// campaigns cannot be enumerated.
func (h *Handler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	sl := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Campaigns.GetBySlug(ctx, sl)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, h.Log, apperr.NotFound("campaign"))
			return
		}
		httpjson.Error(w, h.Log, apperr.Internal("load campaign", err))
		return
	}

	if !campaignpolicy.PubliclyVisible(c) && !campaignpolicy.CanViewDrafts(r, c) {
		httpjson.Error(w, h.Log, apperr.NotFound("campaign"))
		return
	}

	creator, err := h.Users.GetSummary(ctx, c.CreatorID)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("load creator", err))
		return
	}

	httpjson.OK(w, http.StatusOK, "", httpjson.Envelope{
		"campaign": viewOf(*c, creator, time.Now().UTC()),
	})
}
