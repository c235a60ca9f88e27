// internal/domain/models/campaign.go
package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign statuses. A campaign starts life as pending and only leaves
// that state through admin moderation or the outcome evaluator.
const (
	CampaignStatusDraft     = "draft" // reserved, not produced by any flow yet
	CampaignStatusPending   = "pending"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusFailed    = "failed"
	CampaignStatusRejected  = "rejected"
)

// CampaignCategories is the fixed set of accepted categories.
var CampaignCategories = []string{"medical", "education", "emergency", "creative", "charity"}

// MinGoalAmount is the smallest goal a campaign may be created with.
const MinGoalAmount = 1000

// MaxTitleLen caps campaign titles (and therefore base slugs).
const MaxTitleLen = 100

// DefaultCurrency is applied when a campaign is created without one.
const DefaultCurrency = "INR"

// DefaultRejectionReason is recorded when an admin rejects a campaign
// without giving a reason.
const DefaultRejectionReason = "Campaign did not meet platform guidelines"

// Campaign is a fundraising campaign document.
//
// CurrentAmount and DonorCount are aggregates over completed donations;
// they are only ever changed through atomic $inc updates so concurrent
// donations cannot lose counts.
type Campaign struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	CreatorID primitive.ObjectID `bson:"creator_id" json:"creatorId"`

	Title       string `bson:"title" json:"title"`
	Slug        string `bson:"slug" json:"slug"`
	Description string `bson:"description" json:"description"`
	Category    string `bson:"category" json:"category"`

	GoalAmount    float64 `bson:"goal_amount" json:"goalAmount"`
	CurrentAmount float64 `bson:"current_amount" json:"currentAmount"`
	Currency      string  `bson:"currency" json:"currency"`

	Images   []string `bson:"images" json:"images"`
	VideoURL string   `bson:"video_url,omitempty" json:"videoUrl,omitempty"`
	Tags     []string `bson:"tags" json:"tags"`

	Deadline time.Time `bson:"deadline" json:"deadline"`
	Status   string    `bson:"status" json:"status"`

	// Moderation
	IsVerified            bool                `bson:"is_verified" json:"isVerified"`
	VerificationDocuments []string            `bson:"verification_documents,omitempty" json:"verificationDocuments,omitempty"`
	AdminNotes            string              `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`
	ApprovedBy            *primitive.ObjectID `bson:"approved_by,omitempty" json:"approvedBy,omitempty"`
	ApprovedAt            *time.Time          `bson:"approved_at,omitempty" json:"approvedAt,omitempty"`
	RejectionReason       string              `bson:"rejection_reason,omitempty" json:"rejectionReason,omitempty"`

	// Analytics
	ViewCount  int64 `bson:"view_count" json:"viewCount"`
	ShareCount int64 `bson:"share_count" json:"shareCount"`
	DonorCount int64 `bson:"donor_count" json:"donorCount"`

	// Withdrawal
	WithdrawalRequested bool    `bson:"withdrawal_requested" json:"withdrawalRequested"`
	WithdrawalAmount    float64 `bson:"withdrawal_amount,omitempty" json:"withdrawalAmount,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsValidCampaignCategory checks a category against the fixed set.
func IsValidCampaignCategory(c string) bool {
	for _, v := range CampaignCategories {
		if c == v {
			return true
		}
	}
	return false
}

// IsValidCampaignStatus checks a status against the known lifecycle states.
func IsValidCampaignStatus(s string) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusPending, CampaignStatusActive,
		CampaignStatusCompleted, CampaignStatusFailed, CampaignStatusRejected:
		return true
	}
	return false
}

// DaysLeft returns the number of whole days remaining until the deadline,
// rounded up, floored at zero. Computed on read, never stored.
func (c Campaign) DaysLeft(now time.Time) int {
	diff := c.Deadline.Sub(now)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// FundingPercentage returns the rounded percentage of the goal raised so
// far, or 0 when the goal amount is absent. Computed on read, never stored.
func (c Campaign) FundingPercentage() int {
	if c.GoalAmount == 0 {
		return 0
	}
	return int(math.Round(c.CurrentAmount / c.GoalAmount * 100))
}

// EvaluateOutcome returns the terminal status an active campaign is due
// for at the given instant: completed once the goal is reached, failed
// once the deadline has passed unmet. ok is false when the campaign is
// not active or not yet due. Reaching the goal wins over a passed
// deadline when both hold.
func EvaluateOutcome(c Campaign, now time.Time) (status string, ok bool) {
	if c.Status != CampaignStatusActive {
		return "", false
	}
	if c.GoalAmount > 0 && c.CurrentAmount >= c.GoalAmount {
		return CampaignStatusCompleted, true
	}
	if !c.Deadline.IsZero() && !c.Deadline.After(now) {
		return CampaignStatusFailed, true
	}
	return "", false
}
