package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given name, email, and role.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateCampaign inserts a campaign owned by creatorID with the given
// title and status. Goal and deadline use sensible defaults; mutate the
// returned value and re-insert variants directly when a test needs more
// control.
func (f *Fixtures) CreateCampaign(ctx context.Context, creatorID primitive.ObjectID, title, status string) models.Campaign {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Campaign{
		ID:          primitive.NewObjectID(),
		CreatorID:   creatorID,
		Title:       title,
		Slug:        "test-" + primitive.NewObjectID().Hex(),
		Description: "A test campaign that needs your support.",
		Category:    "medical",
		GoalAmount:  50000,
		Currency:    models.DefaultCurrency,
		Deadline:    now.AddDate(0, 0, 30),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("campaigns").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test campaign: %v", err)
	}
	return c
}

// CreateDonation inserts a completed donation against the campaign and
// bumps the campaign's counters the way the donation flow would.
func (f *Fixtures) CreateDonation(ctx context.Context, campaignID, donorID primitive.ObjectID, amount float64) models.Donation {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Donation{
		ID:            primitive.NewObjectID(),
		CampaignID:    campaignID,
		DonorID:       donorID,
		Amount:        amount,
		PaymentMethod: models.PaymentMethodSimulated,
		PaymentStatus: models.PaymentStatusCompleted,
		TransactionID: "txn_" + uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := f.db.Collection("donations").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test donation: %v", err)
	}

	_, err := f.db.Collection("campaigns").UpdateByID(ctx, campaignID,
		bson.M{"$inc": bson.M{"current_amount": amount, "donor_count": 1}})
	if err != nil {
		f.t.Fatalf("failed to apply test donation to campaign: %v", err)
	}
	return d
}
