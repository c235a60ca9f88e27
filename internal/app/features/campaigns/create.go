// internal/app/features/campaigns/create.go
package campaigns

import (
	"context"
	"net/http"
	"time"

	campaignstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/campaigns"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/sanitize"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
)

// HandleCreate processes POST /campaigns. The creator is always the
// authenticated principal; new campaigns enter moderation as pending.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, creatorID, ok := authz.PrincipalCtx(r)
	if !ok {
		httpjson.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	c := models.Campaign{
		CreatorID:             creatorID,
		Title:                 sanitize.Text(req.Title),
		Description:           sanitize.Text(req.Description),
		Category:              sanitize.Text(req.Category),
		GoalAmount:            req.GoalAmount,
		Deadline:              req.Deadline,
		Images:                sanitize.TextSlice(req.Images),
		VideoURL:              sanitize.Text(req.VideoURL),
		Tags:                  sanitize.TextSlice(req.Tags),
		VerificationDocuments: sanitize.TextSlice(req.VerificationDocuments),
	}

	if err := validateNewCampaign(c, time.Now().UTC()); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Campaigns.Create(ctx, c)
	if err != nil {
		if err == campaignstore.ErrDuplicateSlug {
			httpjson.Fail(w, http.StatusConflict, err.Error())
			return
		}
		httpjson.Error(w, h.Log, apperr.Internal("create campaign", err))
		return
	}

	httpjson.OK(w, http.StatusCreated, "Campaign created and submitted for review", httpjson.Envelope{
		"campaign": viewOf(created, nil, time.Now().UTC()),
	})
}

func validateNewCampaign(c models.Campaign, now time.Time) error {
	if c.Title == "" {
		return apperr.Validation("title is required")
	}
	if len(c.Title) > models.MaxTitleLen {
		return apperr.Validation("title must be at most %d characters", models.MaxTitleLen)
	}
	if c.Description == "" {
		return apperr.Validation("description is required")
	}
	if !models.IsValidCampaignCategory(c.Category) {
		return apperr.Validation("category must be one of %v", models.CampaignCategories)
	}
	if c.GoalAmount < models.MinGoalAmount {
		return apperr.Validation("goal amount must be at least %v", models.MinGoalAmount)
	}
	if c.Deadline.IsZero() || !c.Deadline.After(now) {
		return apperr.Validation("deadline must be in the future")
	}
	return nil
}
