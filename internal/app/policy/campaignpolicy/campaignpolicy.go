// internal/app/policy/campaignpolicy.go
//
// Package campaignpolicy provides authorization policies for campaign
// management.
//
// Authorization rules:
//   - Only the creating principal may edit or delete a campaign;
//     admins moderate but do not edit on creators' behalf
//   - Edits are blocked once a campaign is completed
//   - Deletes are blocked once any money has been raised
package campaignpolicy

import (
	"net/http"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
)

// IsOwner reports whether the request user is the campaign's creator.
func IsOwner(r *http.Request, c *models.Campaign) bool {
	_, uid, ok := authz.PrincipalCtx(r)
	if !ok {
		return false
	}
	return uid == c.CreatorID
}

// CanEdit reports whether the request user may update the campaign.
// Returns (false, reason) so handlers can surface why the edit was
// refused without re-deriving the rule.
func CanEdit(r *http.Request, c *models.Campaign) (bool, string) {
	if !IsOwner(r, c) {
		return false, "only the campaign creator can update this campaign"
	}
	if c.Status == models.CampaignStatusCompleted {
		return false, "completed campaigns can no longer be updated"
	}
	return true, ""
}

// CanDelete reports whether the request user may delete the campaign.
// A campaign that has raised money is a ledger anchor and cannot be
// removed by anyone.
func CanDelete(r *http.Request, c *models.Campaign) (bool, string) {
	if !IsOwner(r, c) {
		return false, "only the campaign creator can delete this campaign"
	}
	if c.CurrentAmount > 0 {
		return false, "campaigns with donations cannot be deleted"
	}
	return true, ""
}

// CanModerate reports whether the request user may approve or reject
// campaigns.
func CanModerate(r *http.Request) bool {
	return authz.IsAdmin(r)
}

// CanViewDrafts reports whether the request user may see a campaign
// that is not publicly listed (pending, rejected, draft). Owners and
// admins can; everyone else sees only active, completed, and failed
// campaigns.
func CanViewDrafts(r *http.Request, c *models.Campaign) bool {
	return IsOwner(r, c) || authz.IsAdmin(r)
}

// PubliclyVisible reports whether a campaign appears in public reads.
func PubliclyVisible(c *models.Campaign) bool {
	switch c.Status {
	case models.CampaignStatusActive, models.CampaignStatusCompleted, models.CampaignStatusFailed:
		return true
	}
	return false
}
