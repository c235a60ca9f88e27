// internal/domain/models/donation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment methods. No gateway is integrated; "simulated" settles
// instantly and is the default.
const (
	PaymentMethodUPI        = "upi"
	PaymentMethodCard       = "card"
	PaymentMethodNetbanking = "netbanking"
	PaymentMethodWallet     = "wallet"
	PaymentMethodSimulated  = "simulated"
)

// Payment statuses.
const (
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// MinDonationAmount is one unit of the campaign currency.
const MinDonationAmount = 1

// MaxDonationMessageLen caps the optional donor message.
const MaxDonationMessageLen = 300

// Donation is the immutable ledger entry for a single donation. Once
// written it is never updated or deleted; campaign aggregates must
// reflect the sum of completed donations.
type Donation struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	CampaignID primitive.ObjectID `bson:"campaign_id" json:"campaignId"`
	DonorID    primitive.ObjectID `bson:"donor_id" json:"donorId"`

	Amount      float64 `bson:"amount" json:"amount"`
	Message     string  `bson:"message,omitempty" json:"message,omitempty"`
	IsAnonymous bool    `bson:"is_anonymous" json:"isAnonymous"`

	PaymentMethod string `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus string `bson:"payment_status" json:"paymentStatus"`
	TransactionID string `bson:"transaction_id" json:"transactionId"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsValidPaymentMethod checks a method against the accepted set.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCard, PaymentMethodNetbanking,
		PaymentMethodWallet, PaymentMethodSimulated:
		return true
	}
	return false
}
