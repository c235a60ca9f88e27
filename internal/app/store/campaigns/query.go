// internal/app/store/campaigns/query.go
package campaignstore

import (
	"context"
	"regexp"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/paging"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sort orders accepted by List. Anything else falls back to newest.
const (
	SortNewest     = "newest"
	SortTrending   = "trending"
	SortEndingSoon = "ending-soon"
)

// ListQuery describes a filtered, sorted, paginated campaign listing.
type ListQuery struct {
	Status   string
	Category string
	Search   string
	Sort     string
	Page     paging.Page
}

func (q ListQuery) filter() bson.M {
	f := bson.M{}
	if q.Status != "" {
		f["status"] = q.Status
	}
	if q.Category != "" {
		f["category"] = q.Category
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		f["$or"] = []bson.M{
			{"title": re},
			{"description": re},
			{"tags": re},
		}
	}
	return f
}

func (q ListQuery) sort() bson.D {
	switch q.Sort {
	case SortTrending:
		return bson.D{{Key: "view_count", Value: -1}, {Key: "share_count", Value: -1}}
	case SortEndingSoon:
		return bson.D{{Key: "deadline", Value: 1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

// List returns one page of campaigns matching q.
func (s *Store) List(ctx context.Context, q ListQuery) ([]models.Campaign, error) {
	opts := options.Find().
		SetSort(q.sort()).
		SetSkip(q.Page.Skip()).
		SetLimit(int64(q.Page.Limit))

	cur, err := s.c.Find(ctx, q.filter(), opts)
	if err != nil {
		return nil, err
	}
	out := []models.Campaign{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total number of campaigns matching q, ignoring paging.
func (s *Store) Count(ctx context.Context, q ListQuery) (int64, error) {
	return s.c.CountDocuments(ctx, q.filter())
}

// ListByCreator returns every campaign owned by creatorID, newest first.
func (s *Store) ListByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]models.Campaign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"creator_id": creatorID}, opts)
	if err != nil {
		return nil, err
	}
	out := []models.Campaign{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByIDs batch-loads campaigns keyed by ID. Missing IDs are simply
// absent from the map.
func (s *Store) ByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Campaign, error) {
	out := make(map[primitive.ObjectID]models.Campaign, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var rows []models.Campaign
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, c := range rows {
		out[c.ID] = c
	}
	return out, nil
}

// ListPending returns campaigns awaiting moderation, newest first.
func (s *Store) ListPending(ctx context.Context, page paging.Page) ([]models.Campaign, int64, error) {
	filter := bson.M{"status": models.CampaignStatusPending}

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
	out := []models.Campaign{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
