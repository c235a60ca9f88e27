// internal/app/features/campaigns/delete.go
package campaigns

import (
	"context"
	"net/http"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/policy/campaignpolicy"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleDelete processes DELETE /campaigns/{id}. Owner-only, and
// refused outright once any money has been raised: donations reference
// the campaign, so removing it would orphan the ledger.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("invalid campaign id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Campaigns.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, h.Log, apperr.NotFound("campaign"))
			return
		}
		httpjson.Error(w, h.Log, apperr.Internal("load campaign", err))
		return
	}

	if allowed, reason := campaignpolicy.CanDelete(r, c); !allowed {
		if !campaignpolicy.IsOwner(r, c) {
			httpjson.Error(w, h.Log, apperr.Forbidden(reason))
		} else {
			httpjson.Error(w, h.Log, apperr.InvalidState(reason))
		}
		return
	}

	if err := h.Campaigns.Delete(ctx, id); err != nil && err != mongo.ErrNoDocuments {
		httpjson.Error(w, h.Log, apperr.Internal("delete campaign", err))
		return
	}

	httpjson.OK(w, http.StatusOK, "Campaign deleted", nil)
}
