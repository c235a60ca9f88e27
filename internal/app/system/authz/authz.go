// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrincipalCtx returns the principal's role (lowercased), Mongo ObjectID,
// and a found flag. If no principal is present or its ID is malformed it
// returns "visitor", NilObjectID, false; ok=true always means a valid
// authenticated principal with a usable ObjectID.
func PrincipalCtx(r *http.Request) (role string, userID primitive.ObjectID, ok bool) {
	p, ok := auth.CurrentPrincipal(r)
	if !ok {
		return "visitor", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		// Malformed ID in a signed token; fail closed.
		return "visitor", primitive.NilObjectID, false
	}
	return strings.ToLower(p.Role), userID, true
}

// IsAdmin reports whether the request's principal is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, ok := PrincipalCtx(r)
	return ok && role == "admin"
}

// IsCreator reports whether the principal may create campaigns.
// Admins are also accepted, matching the route policy of the API.
func IsCreator(r *http.Request) bool {
	role, _, ok := PrincipalCtx(r)
	return ok && (role == "creator" || role == "admin")
}

// IsDonor reports whether the request's principal is a donor.
func IsDonor(r *http.Request) bool {
	role, _, ok := PrincipalCtx(r)
	return ok && role == "donor"
}

// HasAnyRole reports whether the principal has any of the given roles.
// Returns false for anonymous requests.
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, ok := PrincipalCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
