// internal/app/features/campaigns/handler.go
package campaigns

import (
	campaignstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/campaigns"
	userstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the campaign endpoints: public browsing, creator CRUD,
// and admin moderation.
//
// It is constructed once at startup in bootstrap, using the shared
// Mongo database handle and logger.
type Handler struct {
	DB        *mongo.Database
	Log       *zap.Logger
	Campaigns *campaignstore.Store
	Users     *userstore.Store
}

// New constructs a Handler bound to the given Mongo database and logger.
func New(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		Campaigns: campaignstore.New(db),
		Users:     userstore.New(db),
	}
}
