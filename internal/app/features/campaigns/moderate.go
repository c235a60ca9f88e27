// internal/app/features/campaigns/moderate.go
package campaigns

import (
	"context"
	"net/http"
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/paging"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/sanitize"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleListPending processes GET /campaigns/admin/pending: the
// moderation queue, most recent submissions first.
func (h *Handler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	page := paging.Parse(r, paging.DefaultLimit)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, total, err := h.Campaigns.ListPending(ctx, page)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("list pending campaigns", err))
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
		"totalPages":  page.TotalPages(total),
		"currentPage": page.Number,
	})
}

// HandleApprove processes PUT /campaigns/{id}/approve. Approving a
// campaign that is no longer pending is an invalid state transition,
// not a silent success.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	_, adminID, ok := authz.PrincipalCtx(r)
	if !ok {
		httpjson.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("invalid campaign id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Campaigns.Approve(ctx, id, adminID); err != nil {
		h.approveError(w, ctx, id, err)
		return
	}

	updated, err := h.Campaigns.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("reload campaign", err))
		return
	}

	httpjson.OK(w, http.StatusOK, "Campaign approved", httpjson.Envelope{
		"campaign": viewOf(*updated, nil, time.Now().UTC()),
	})
}

// HandleReject processes PUT /campaigns/{id}/reject. The reason is
// optional and falls back to the standard guideline text. Rejection is
// valid from any status, so repeating it overwrites the reason.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("invalid campaign id"))
		return
	}

	var req rejectRequest
	if r.ContentLength > 0 {
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, h.Log, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Campaigns.Reject(ctx, id, sanitize.Text(req.Reason)); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, h.Log, apperr.NotFound("campaign"))
			return
		}
		httpjson.Error(w, h.Log, apperr.Internal("reject campaign", err))
		return
	}

	updated, err := h.Campaigns.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("reload campaign", err))
		return
	}

	httpjson.OK(w, http.StatusOK, "Campaign rejected", httpjson.Envelope{
		"campaign": viewOf(*updated, nil, time.Now().UTC()),
	})
}

// approveError distinguishes "no such campaign" from "campaign is not
// pending": Approve filters on status=pending, so a matched-nothing
// result needs a second look to report the right error.
func (h *Handler) approveError(w http.ResponseWriter, ctx context.Context, id primitive.ObjectID, err error) {
	if err != mongo.ErrNoDocuments {
		httpjson.Error(w, h.Log, apperr.Internal("approve campaign", err))
		return
	}
	c, lookupErr := h.Campaigns.GetByID(ctx, id)
	if lookupErr == mongo.ErrNoDocuments {
		httpjson.Error(w, h.Log, apperr.NotFound("campaign"))
		return
	}
	if lookupErr != nil {
		httpjson.Error(w, h.Log, apperr.Internal("load campaign", lookupErr))
		return
	}
	httpjson.Error(w, h.Log, apperr.InvalidState(
		"only pending campaigns can be approved; campaign is "+c.Status))
}
