// internal/app/features/donations/types.go
package donations

import (
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createRequest is the payload for POST /donations.
type createRequest struct {
	CampaignID    string  `json:"campaignId"`
	Amount        float64 `json:"amount"`
	Message       string  `json:"message"`
	IsAnonymous   bool    `json:"isAnonymous"`
	PaymentMethod string  `json:"paymentMethod"`
}

// campaignRef is the slice of campaign data joined onto a donor's own
// donation history.
type campaignRef struct {
	ID     primitive.ObjectID `json:"id"`
	Title  string             `json:"title"`
	Slug   string             `json:"slug"`
	Status string             `json:"status"`
}

// donationView is the serialized donation. The shadowed DonorID plus
// the Donor summary let the public wall mask anonymous donors while
// the stored document keeps the real reference.
type donationView struct {
	models.Donation
	DonorID  string              `json:"donorId,omitempty"`
	Donor    *models.UserSummary `json:"donor,omitempty"`
	Campaign *campaignRef        `json:"campaign,omitempty"`
}

// publicViewOf builds the donation-wall shape. Anonymous donations
// carry no donor identity at all.
func publicViewOf(d models.Donation, donor *models.UserSummary) donationView {
	v := donationView{Donation: d}
	if d.IsAnonymous {
		return v
	}
	v.DonorID = d.DonorID.Hex()
	v.Donor = donor
	return v
}

// ownViewOf builds the shape for a donor's own history, joining the
// campaign reference when the campaign still exists.
func ownViewOf(d models.Donation, c *models.Campaign) donationView {
	v := donationView{Donation: d, DonorID: d.DonorID.Hex()}
	if c != nil {
		v.Campaign = &campaignRef{ID: c.ID, Title: c.Title, Slug: c.Slug, Status: c.Status}
	}
	return v
}
