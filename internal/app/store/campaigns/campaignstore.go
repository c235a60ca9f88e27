// internal/app/store/campaigns/campaignstore.go
package campaignstore

import (
	"context"
	"errors"
	"time"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/slug"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateSlug is returned when the unique slug index rejects an
// insert or update. The slugger probes for a free slug first, so this
// only surfaces on a concurrent create race.
var ErrDuplicateSlug = errors.New("a campaign with this slug already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("campaigns")}
}

// createAttempts bounds the retry loop for slug insert races.
const createAttempts = 3

// Create inserts a new campaign. The slug is derived from the title and
// made unique by probing; ID, status, and timestamps are assigned here.
func (s *Store) Create(ctx context.Context, c models.Campaign) (models.Campaign, error) {
	now := time.Now().UTC()

	c.ID = primitive.NewObjectID()
	if c.Status == "" {
		c.Status = models.CampaignStatusPending
	}
	if c.Currency == "" {
		c.Currency = models.DefaultCurrency
	}
	c.CurrentAmount = 0
	c.ViewCount = 0
	c.ShareCount = 0
	c.DonorCount = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	base := slug.Make(c.Title)
	for attempt := 0; attempt < createAttempts; attempt++ {
		unique, err := slug.Unique(ctx, base, s.slugTaken(c.ID))
		if err != nil {
			return models.Campaign{}, err
		}
		c.Slug = unique

		if _, err := s.c.InsertOne(ctx, c); err != nil {
			if wafflemongo.IsDup(err) {
				continue // raced another create; probe again
			}
			return models.Campaign{}, err
		}
		return c, nil
	}
	return models.Campaign{}, ErrDuplicateSlug
}

// GetByID loads a campaign by ObjectID. Returns mongo.ErrNoDocuments if missing.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	var c models.Campaign
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetBySlug loads a campaign by its slug.
func (s *Store) GetBySlug(ctx context.Context, sl string) (*models.Campaign, error) {
	var c models.Campaign
	if err := s.c.FindOne(ctx, bson.M{"slug": sl}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update holds the mutable campaign fields. Nil pointers are left
// untouched; a non-nil pointer overwrites the stored value.
type Update struct {
	Title       *string
	Description *string
	Category    *string
	GoalAmount  *float64
	Deadline    *time.Time
	Images      *[]string
	VideoURL    *string
	Tags        *[]string
	Status      *string
}

// UpdateFields applies a partial update and refreshes UpdatedAt. When
// the title changes the slug is re-derived and probed for uniqueness,
// excluding the campaign itself.
func (s *Store) UpdateFields(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{"updated_at": time.Now().UTC()}

	if upd.Title != nil {
		unique, err := slug.Unique(ctx, slug.Make(*upd.Title), s.slugTaken(id))
		if err != nil {
			return err
		}
		set["title"] = *upd.Title
		set["slug"] = unique
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.GoalAmount != nil {
		set["goal_amount"] = *upd.GoalAmount
	}
	if upd.Deadline != nil {
		set["deadline"] = *upd.Deadline
	}
	if upd.Images != nil {
		set["images"] = *upd.Images
	}
	if upd.VideoURL != nil {
		set["video_url"] = *upd.VideoURL
	}
	if upd.Tags != nil {
		set["tags"] = *upd.Tags
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a campaign. Returns mongo.ErrNoDocuments if it did not exist.
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

// IncViewCount bumps the view counter and returns the new value.
func (s *Store) IncViewCount(ctx context.Context, id primitive.ObjectID) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Campaign
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"view_count": 1}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.ViewCount, nil
}

// IncShareCount bumps the share counter and returns the new value.
func (s *Store) IncShareCount(ctx context.Context, id primitive.ObjectID) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Campaign
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"share_count": 1}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.ShareCount, nil
}

// Approve moves a pending campaign to active and records the reviewer.
// The filter requires status=pending so a double approval matches nothing.
func (s *Store) Approve(ctx context.Context, id, adminID primitive.ObjectID) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.CampaignStatusPending},
		bson.M{"$set": bson.M{
			"status":           models.CampaignStatusActive,
			"is_verified":      true,
			"approved_by":      adminID,
			"approved_at":      now,
			"rejection_reason": "",
			"updated_at":       now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Reject moves a campaign to rejected with the given reason. Unlike
// Approve it accepts any current status: rejecting again overwrites the
// recorded reason.
func (s *Store) Reject(ctx context.Context, id primitive.ObjectID, reason string) error {
	if reason == "" {
		reason = models.DefaultRejectionReason
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":           models.CampaignStatusRejected,
			"rejection_reason": reason,
			"updated_at":       time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ApplyDonation atomically folds a completed donation into the
// campaign's running totals. With a session context it participates in
// the caller's transaction; standalone it is still a single atomic
// document update.
func (s *Store) ApplyDonation(ctx context.Context, id primitive.ObjectID, amount float64) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.CampaignStatusActive},
		bson.M{
			"$inc": bson.M{"current_amount": amount, "donor_count": 1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetOutcome finalizes an active campaign as completed or failed. The
// status filter makes the sweep idempotent: a campaign already
// finalized by a concurrent sweep matches nothing and is skipped.
func (s *Store) SetOutcome(ctx context.Context, id primitive.ObjectID, outcome string) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.CampaignStatusActive},
		bson.M{"$set": bson.M{
			"status":     outcome,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// FindOutcomeCandidates returns active campaigns that are due for
// finalization: the deadline has passed, or the goal has been reached.
func (s *Store) FindOutcomeCandidates(ctx context.Context, now time.Time) ([]models.Campaign, error) {
	filter := bson.M{
		"status": models.CampaignStatusActive,
		"$or": []bson.M{
			{"deadline": bson.M{"$lte": now}},
			{"$expr": bson.M{"$gte": bson.A{"$current_amount", "$goal_amount"}}},
		},
	}
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var out []models.Campaign
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// slugTaken adapts the collection to the slugger's existence probe,
// ignoring the document being created or renamed.
func (s *Store) slugTaken(exclude primitive.ObjectID) slug.ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		filter := bson.M{"slug": candidate, "_id": bson.M{"$ne": exclude}}
		n, err := s.c.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}
