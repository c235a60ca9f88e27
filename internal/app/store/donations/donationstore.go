// internal/app/store/donations/donationstore.go
package donationstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/paging"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateTransaction is returned when the unique transaction index
// rejects an insert. Transaction IDs are generated server-side, so this
// indicates a retry of an already-recorded donation.
var ErrDuplicateTransaction = errors.New("a donation with this transaction id already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donations")}
}

// NewTransactionID mints an opaque payment reference.
func NewTransactionID() string {
	return fmt.Sprintf("txn_%s", uuid.NewString())
}

// Create inserts a donation ledger entry. ID, transaction ID, and
// timestamps are assigned here; with a session context the insert
// participates in the caller's transaction.
func (s *Store) Create(ctx context.Context, d models.Donation) (models.Donation, error) {
	now := time.Now().UTC()

	d.ID = primitive.NewObjectID()
	if d.TransactionID == "" {
		d.TransactionID = NewTransactionID()
	}
	if d.PaymentMethod == "" {
		d.PaymentMethod = models.PaymentMethodSimulated
	}
	if d.PaymentStatus == "" {
		d.PaymentStatus = models.PaymentStatusCompleted
	}
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Donation{}, ErrDuplicateTransaction
		}
		return models.Donation{}, err
	}
	return d, nil
}

// Delete removes a ledger entry. Used only to back out an insert whose
// companion campaign update failed on deployments without transactions.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetByID loads a donation by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	var d models.Donation
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByCampaign returns one page of a campaign's completed donations,
// newest first, along with the total count.
func (s *Store) ListByCampaign(ctx context.Context, campaignID primitive.ObjectID, page paging.Page) ([]models.Donation, int64, error) {
	filter := bson.M{
		"campaign_id":    campaignID,
		"payment_status": models.PaymentStatusCompleted,
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	out := []models.Donation{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListByDonor returns every donation made by donorID, newest first.
func (s *Store) ListByDonor(ctx context.Context, donorID primitive.ObjectID) ([]models.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"donor_id": donorID}, opts)
	if err != nil {
		return nil, err
	}
	out := []models.Donation{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SumCompletedByCampaign totals the completed ledger entries for a
// campaign. Used to audit the denormalized current_amount counter.
func (s *Store) SumCompletedByCampaign(ctx context.Context, campaignID primitive.ObjectID) (float64, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"campaign_id":    campaignID,
			"payment_status": models.PaymentStatusCompleted,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	})
	if err != nil {
		return 0, err
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
