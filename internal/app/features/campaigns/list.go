// internal/app/features/campaigns/list.go
package campaigns

import (
	"context"
	"net/http"
	"time"

	campaignstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/campaigns"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/paging"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// HandleList processes GET /campaigns. The public listing is pinned to
// active campaigns regardless of what the caller asks for.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := campaignstore.ListQuery{
		Status:   models.CampaignStatusActive,
		Category: query.Get(r, "category"),
		Search:   query.Get(r, "search"),
		Sort:     query.Get(r, "sort"),
		Page:     paging.Parse(r, paging.DefaultLimit),
	}
	if q.Category != "" && !models.IsValidCampaignCategory(q.Category) {
		httpjson.Error(w, h.Log, apperr.Validation("category must be one of %v", models.CampaignCategories))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Campaigns.List(ctx, q)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("list campaigns", err))
		return
	}
	total, err := h.Campaigns.Count(ctx, q)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("count campaigns", err))
		return
	}

	creators, err := h.Users.SummariesByIDs(ctx, creatorIDs(items))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("load creators", err))
		return
	}

	views := viewsOf(items, creators, time.Now().UTC())
	httpjson.OK(w, http.StatusOK, "", httpjson.Envelope{
		"campaigns":   views,
		"count":       len(views),
		"total":       total,
		"totalPages":  q.Page.TotalPages(total),
		"currentPage": q.Page.Number,
	})
}
