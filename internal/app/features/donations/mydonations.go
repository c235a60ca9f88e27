// internal/app/features/donations/mydonations.go
package donations

import (
	"context"
	"net/http"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleMyDonations processes GET /donations/my-donations: the
// principal's full giving history with campaign references joined on.
func (h *Handler) HandleMyDonations(w http.ResponseWriter, r *http.Request) {
	_, donorID, ok := authz.PrincipalCtx(r)
	if !ok {
		httpjson.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Donations.ListByDonor(ctx, donorID)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("list own donations", err))
		return
	}

	campaigns, err := h.Campaigns.ByIDs(ctx, campaignIDs(items))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("load campaigns", err))
		return
	}

	var totalGiven float64
	views := make([]donationView, 0, len(items))
	for _, d := range items {
		var c *models.Campaign
		if cc, ok := campaigns[d.CampaignID]; ok {
			c = &cc
		}
		views = append(views, ownViewOf(d, c))
		if d.PaymentStatus == models.PaymentStatusCompleted {
			totalGiven += d.Amount
		}
	}

	httpjson.OK(w, http.StatusOK, "", httpjson.Envelope{
		"donations":  views,
		"count":      len(views),
		"totalGiven": totalGiven,
	})
}

func campaignIDs(ds []models.Donation) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(ds))
	ids := make([]primitive.ObjectID, 0, len(ds))
	for _, d := range ds {
		if !seen[d.CampaignID] {
			seen[d.CampaignID] = true
			ids = append(ids, d.CampaignID)
		}
	}
	return ids
}
