// internal/app/features/donations/handler.go
package donations

import (
	campaignstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/campaigns"
	donationstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/donations"
	userstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the donation endpoints: recording donations and the
// public and personal donation listings.
//
// It holds the Mongo client as well as the database because recording
// a donation spans two collections and runs in a session transaction
// where the deployment supports one.
type Handler struct {
	Client    *mongo.Client
	DB        *mongo.Database
	Log       *zap.Logger
	Donations *donationstore.Store
	Campaigns *campaignstore.Store
	Users     *userstore.Store
}

// New constructs a Handler bound to the given Mongo client, database,
// and logger.
func New(client *mongo.Client, db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Client:    client,
		DB:        db,
		Log:       logger,
		Donations: donationstore.New(db),
		Campaigns: campaignstore.New(db),
		Users:     userstore.New(db),
	}
}
