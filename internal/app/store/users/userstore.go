// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"regexp"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/paging"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetSummary loads the reduced projection for a single user. A missing
// user yields nil with no error, so callers can render orphaned
// references without failing the whole response.
func (s *Store) GetSummary(ctx context.Context, id primitive.ObjectID) (*models.UserSummary, error) {
	var u models.UserSummary
	err := s.c.FindOne(ctx, bson.M{"_id": id}, summaryOpts()).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// SummariesByIDs batch-loads reduced projections keyed by user ID.
// IDs with no matching user are simply absent from the map.
func (s *Store) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	out := make(map[primitive.ObjectID]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(summaryProjection()))
	if err != nil {
		return nil, err
	}
	var rows []models.UserSummary
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, u := range rows {
		out[u.ID] = u
	}
	return out, nil
}

// ListQuery describes the admin user listing: optional role filter and
// case-insensitive name/email search.
type ListQuery struct {
	Role   string
	Search string
	Page   paging.Page
}

func (q ListQuery) filter() bson.M {
	f := bson.M{}
	if q.Role != "" {
		f["role"] = q.Role
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		f["$or"] = []bson.M{
			{"name": re},
			{"email": re},
		}
	}
	return f
}

// List returns one page of users matching q, newest first, plus the
// total count. The credential hash is projected out at the query level.
func (s *Store) List(ctx context.Context, q ListQuery) ([]models.User, int64, error) {
	filter := q.filter()

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(q.Page.Skip()).
		SetLimit(int64(q.Page.Limit)).
		SetProjection(bson.M{"password_hash": 0})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	out := []models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func summaryProjection() bson.M {
	return bson.M{"_id": 1, "name": 1, "email": 1, "avatar": 1}
}

func summaryOpts() *options.FindOneOptions {
	return options.FindOne().SetProjection(summaryProjection())
}
