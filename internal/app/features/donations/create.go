// internal/app/features/donations/create.go
package donations

import (
	"context"
	"net/http"
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/sanitize"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/txn"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCreate processes POST /donations. The ledger insert and the
// campaign counter update run in one transaction on replica-set
// deployments; on standalone servers the two writes fall back to
// insert-then-atomic-increment, which keeps the counters correct under
// concurrency but can leave an orphaned ledger entry if the process
// dies between the writes.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, donorID, ok := authz.PrincipalCtx(r)
	if !ok {
		httpjson.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	campaignID, err := primitive.ObjectIDFromHex(req.CampaignID)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("invalid campaign id"))
		return
	}
	if req.Amount < models.MinDonationAmount {
		httpjson.Error(w, h.Log, apperr.Validation("donation amount must be at least %d", models.MinDonationAmount))
		return
	}
	msg := sanitize.Text(req.Message)
	if len(msg) > models.MaxDonationMessageLen {
		httpjson.Error(w, h.Log, apperr.Validation("message must be at most %d characters", models.MaxDonationMessageLen))
		return
	}
	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodSimulated
	}
	if !models.IsValidPaymentMethod(method) {
		httpjson.Error(w, h.Log, apperr.Validation("unknown payment method %q", method))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	campaign, err := h.Campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, h.Log, apperr.NotFound("campaign"))
			return
		}
		httpjson.Error(w, h.Log, apperr.Internal("load campaign", err))
		return
	}
	now := time.Now().UTC()
	if _, due := models.EvaluateOutcome(*campaign, now); due || campaign.Status != models.CampaignStatusActive {
		httpjson.Error(w, h.Log, apperr.InvalidState("campaign is not accepting donations"))
		return
	}

	d := models.Donation{
		CampaignID:    campaignID,
		DonorID:       donorID,
		Amount:        req.Amount,
		Message:       msg,
		IsAnonymous:   req.IsAnonymous,
		PaymentMethod: method,
		PaymentStatus: models.PaymentStatusCompleted,
	}

	created, err := h.record(ctx, d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// The campaign stopped accepting donations between the
			// check and the write.
			httpjson.Error(w, h.Log, apperr.InvalidState("campaign is not accepting donations"))
			return
		}
		httpjson.Error(w, h.Log, apperr.Internal("record donation", err))
		return
	}

	httpjson.OK(w, http.StatusCreated, "Donation recorded", httpjson.Envelope{
		"donation": ownViewOf(created, campaign),
	})
}

// record writes the donation and updates the campaign counters, inside
// a transaction when the deployment supports one.
func (h *Handler) record(ctx context.Context, d models.Donation) (models.Donation, error) {
	var created models.Donation

	err := txn.WithTransaction(ctx, h.Client, func(sc mongo.SessionContext) error {
		var err error
		created, err = h.Donations.Create(sc, d)
		if err != nil {
			return err
		}
		return h.Campaigns.ApplyDonation(sc, d.CampaignID, d.Amount)
	})
	if err == nil {
		return created, nil
	}
	if !txn.IsNotSupported(err) {
		return models.Donation{}, err
	}

	h.Log.Debug("transactions unsupported, using sequential writes",
		zap.Error(err))

	created, err = h.Donations.Create(ctx, d)
	if err != nil {
		return models.Donation{}, err
	}
	if err := h.Campaigns.ApplyDonation(ctx, d.CampaignID, d.Amount); err != nil {
		// Back the ledger entry out so a refused donation never leaves
		// a completed record behind with no matching counter update.
		if delErr := h.Donations.Delete(ctx, created.ID); delErr != nil {
			h.Log.Error("orphaned donation left in ledger",
				zap.String("donation_id", created.ID.Hex()),
				zap.NamedError("delete_error", delErr),
				zap.Error(err))
		}
		return models.Donation{}, err
	}
	return created, nil
}
