// internal/app/features/campaigns/update.go
package campaigns

import (
	"context"
	"net/http"
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/policy/campaignpolicy"
	campaignstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/campaigns"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/sanitize"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleUpdate processes PUT /campaigns/{id}. Owner-only; a rejected
// campaign re-enters moderation as pending after any edit.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("invalid campaign id"))
		return
	}

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
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

	if allowed, reason := campaignpolicy.CanEdit(r, c); !allowed {
		// Ownership failures are Forbidden; an owner blocked by the
		// campaign's lifecycle state gets InvalidState.
		if !campaignpolicy.IsOwner(r, c) {
			httpjson.Error(w, h.Log, apperr.Forbidden(reason))
		} else {
			httpjson.Error(w, h.Log, apperr.InvalidState(reason))
		}
		return
	}

	upd, err := buildUpdate(req, time.Now().UTC())
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	// Edits to a rejected campaign put it back in the review queue.
	if c.Status == models.CampaignStatusRejected {
		pending := models.CampaignStatusPending
		upd.Status = &pending
	}

	if err := h.Campaigns.UpdateFields(ctx, id, upd); err != nil {
		if err == campaignstore.ErrDuplicateSlug {
			httpjson.Fail(w, http.StatusConflict, err.Error())
			return
		}
		httpjson.Error(w, h.Log, apperr.Internal("update campaign", err))
		return
	}

	updated, err := h.Campaigns.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("reload campaign", err))
		return
	}

	httpjson.OK(w, http.StatusOK, "Campaign updated", httpjson.Envelope{
		"campaign": viewOf(*updated, nil, time.Now().UTC()),
	})
}

// buildUpdate sanitizes and validates the supplied fields, leaving
// absent ones out of the store update entirely.
func buildUpdate(req updateRequest, now time.Time) (campaignstore.Update, error) {
	var upd campaignstore.Update

	if req.Title != nil {
		t := sanitize.Text(*req.Title)
		if t == "" {
			return upd, apperr.Validation("title cannot be empty")
		}
		if len(t) > models.MaxTitleLen {
			return upd, apperr.Validation("title must be at most %d characters", models.MaxTitleLen)
		}
		upd.Title = &t
	}
	if req.Description != nil {
		d := sanitize.Text(*req.Description)
		if d == "" {
			return upd, apperr.Validation("description cannot be empty")
		}
		upd.Description = &d
	}
	if req.Category != nil {
		cat := sanitize.Text(*req.Category)
		if !models.IsValidCampaignCategory(cat) {
			return upd, apperr.Validation("category must be one of %v", models.CampaignCategories)
		}
		upd.Category = &cat
	}
	if req.GoalAmount != nil {
		if *req.GoalAmount < models.MinGoalAmount {
			return upd, apperr.Validation("goal amount must be at least %v", models.MinGoalAmount)
		}
		upd.GoalAmount = req.GoalAmount
	}
	if req.Deadline != nil {
		if !req.Deadline.After(now) {
			return upd, apperr.Validation("deadline must be in the future")
		}
		upd.Deadline = req.Deadline
	}
	if req.Images != nil {
		imgs := sanitize.TextSlice(*req.Images)
		upd.Images = &imgs
	}
	if req.VideoURL != nil {
		v := sanitize.Text(*req.VideoURL)
		upd.VideoURL = &v
	}
	if req.Tags != nil {
		tags := sanitize.TextSlice(*req.Tags)
		upd.Tags = &tags
	}
	return upd, nil
}
