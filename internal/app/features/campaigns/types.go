// internal/app/features/campaigns/types.go
package campaigns

import (
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createRequest is the payload for POST /campaigns.
type createRequest struct {
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Category              string    `json:"category"`
	GoalAmount            float64   `json:"goalAmount"`
	Deadline              time.Time `json:"deadline"`
	Images                []string  `json:"images"`
	VideoURL              string    `json:"videoUrl"`
	Tags                  []string  `json:"tags"`
	VerificationDocuments []string  `json:"verificationDocuments"`
}

// updateRequest is the payload for PUT /campaigns/{id}. Absent fields
// stay untouched, so everything is a pointer.
type updateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	GoalAmount  *float64   `json:"goalAmount"`
	Deadline    *time.Time `json:"deadline"`
	Images      *[]string  `json:"images"`
	VideoURL    *string    `json:"videoUrl"`
	Tags        *[]string  `json:"tags"`
}

// rejectRequest is the payload for PUT /campaigns/{id}/reject.
type rejectRequest struct {
	Reason string `json:"reason"`
}

// campaignView is the serialized campaign: the stored document plus
// the fields computed on read (daysLeft, fundingPercentage, effective
// status) and the joined creator summary.
type campaignView struct {
	models.Campaign
	DaysLeft          int                 `json:"daysLeft"`
	FundingPercentage int                 `json:"fundingPercentage"`
	Creator           *models.UserSummary `json:"creator,omitempty"`
}

// viewOf builds the response shape for one campaign. The status shown
// to clients reflects a due outcome even before the sweep persists it.
func viewOf(c models.Campaign, creator *models.UserSummary, now time.Time) campaignView {
	if outcome, ok := models.EvaluateOutcome(c, now); ok {
		c.Status = outcome
	}
	return campaignView{
		Campaign:          c,
		DaysLeft:          c.DaysLeft(now),
		FundingPercentage: c.FundingPercentage(),
		Creator:           creator,
	}
}

// viewsOf builds the response shapes for a listing, joining creator
// summaries from the given map.
func viewsOf(cs []models.Campaign, creators map[primitive.ObjectID]models.UserSummary, now time.Time) []campaignView {
	out := make([]campaignView, 0, len(cs))
	for _, c := range cs {
		var cr *models.UserSummary
		if s, ok := creators[c.CreatorID]; ok {
			cr = &s
		}
		out = append(out, viewOf(c, cr, now))
	}
	return out
}

// creatorIDs collects the distinct creator IDs of a listing for the
// batched summary join.
func creatorIDs(cs []models.Campaign) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(cs))
	ids := make([]primitive.ObjectID, 0, len(cs))
	for _, c := range cs {
		if !seen[c.CreatorID] {
			seen[c.CreatorID] = true
			ids = append(ids, c.CreatorID)
		}
	}
	return ids
}
