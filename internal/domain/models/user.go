// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles recognized on a principal.
const (
	RoleDonor   = "donor"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

// User represents donors, campaign creators, and admins.
//
// Account creation, password hashing, and token issuance belong to the
// identity provider; this service only reads user records for listing
// and for joining donor/creator summaries onto campaigns and donations.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"` // never serialized
	Role         string             `bson:"role" json:"role"`                 // donor | creator | admin
	Avatar       string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserSummary is the reduced projection joined onto campaigns and
// donations. Credential fields are structurally excluded.
type UserSummary struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	Avatar string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// IsValidRole checks a role against the recognized set.
func IsValidRole(role string) bool {
	switch role {
	case RoleDonor, RoleCreator, RoleAdmin:
		return true
	}
	return false
}
