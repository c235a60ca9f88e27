package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID   string
	Role string
}

// AdminUser returns a TestUser with admin role.
func AdminUser() TestUser {
	return TestUser{ID: primitive.NewObjectID().Hex(), Role: "admin"}
}

// CreatorUser returns a TestUser with creator role.
func CreatorUser() TestUser {
	return TestUser{ID: primitive.NewObjectID().Hex(), Role: "creator"}
}

// DonorUser returns a TestUser with donor role.
func DonorUser() TestUser {
	return TestUser{ID: primitive.NewObjectID().Hex(), Role: "donor"}
}

// AsUser returns a TestUser for an existing ObjectID and role.
func AsUser(id primitive.ObjectID, role string) TestUser {
	return TestUser{ID: id.Hex(), Role: role}
}

// WithUser adds a principal to the request context for testing
// authenticated handlers, bypassing the bearer token middleware.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithTestPrincipal(r, auth.Principal{ID: user.ID, Role: user.Role})
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
