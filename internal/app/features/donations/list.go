// internal/app/features/donations/list.go
package donations

import (
	"context"
	"net/http"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/paging"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleListByCampaign processes GET /donations/campaign/{campaignId}:
// the public donation wall, newest first, with anonymous donors masked.
func (h *Handler) HandleListByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "campaignId"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("invalid campaign id"))
		return
	}
	page := paging.Parse(r, paging.DefaultLimit)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, total, err := h.Donations.ListByCampaign(ctx, campaignID, page)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("list donations", err))
		return
	}

	donors, err := h.Users.SummariesByIDs(ctx, namedDonorIDs(items))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("load donors", err))
		return
	}

	views := make([]donationView, 0, len(items))
	for _, d := range items {
		var donor *models.UserSummary
		if s, ok := donors[d.DonorID]; ok {
			donor = &s
		}
		views = append(views, publicViewOf(d, donor))
	}

	httpjson.OK(w, http.StatusOK, "", httpjson.Envelope{
		"donations":   views,
		"count":       len(views),
		"total":       total,
		"totalPages":  page.TotalPages(total),
		"currentPage": page.Number,
	})
}

// namedDonorIDs collects the donor IDs worth joining: anonymous
// donations never reach the user store at all.
func namedDonorIDs(ds []models.Donation) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(ds))
	ids := make([]primitive.ObjectID, 0, len(ds))
	for _, d := range ds {
		if d.IsAnonymous || seen[d.DonorID] {
			continue
		}
		seen[d.DonorID] = true
		ids = append(ids, d.DonorID)
	}
	return ids
}
