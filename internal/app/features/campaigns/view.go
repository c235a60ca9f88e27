// internal/app/features/campaigns/view.go
package campaigns

import (
	"context"
	"net/http"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleView processes POST /campaigns/{id}/view. Unauthenticated and
// deliberately not idempotent: every call counts.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	h.bumpCounter(w, r, h.Campaigns.IncViewCount, "viewCount")
}

// HandleShare processes POST /campaigns/{id}/share.
func (h *Handler) HandleShare(w http.ResponseWriter, r *http.Request) {
	h.bumpCounter(w, r, h.Campaigns.IncShareCount, "shareCount")
}

func (h *Handler) bumpCounter(w http.ResponseWriter, r *http.Request,
	inc func(context.Context, primitive.ObjectID) (int64, error), field string) {

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("invalid campaign id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := inc(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, h.Log, apperr.NotFound("campaign"))
			return
		}
		httpjson.Error(w, h.Log, apperr.Internal("bump counter", err))
		return
	}

	httpjson.OK(w, http.StatusOK, "", httpjson.Envelope{field: n})
}
