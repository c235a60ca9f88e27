// internal/app/features/campaigns/mycampaigns.go
package campaigns

import (
	"context"
	"net/http"
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
)

// HandleMyCampaigns processes GET /campaigns/my-campaigns: every
// campaign owned by the principal, all statuses, newest first.
func (h *Handler) HandleMyCampaigns(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.PrincipalCtx(r)
	if !ok {
		httpjson.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Campaigns.ListByCreator(ctx, uid)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("list own campaigns", err))
		return
	}

	views := viewsOf(items, nil, time.Now().UTC())
	httpjson.OK(w, http.StatusOK, "", httpjson.Envelope{
		"campaigns": views,
		"count":     len(views),
	})
}
