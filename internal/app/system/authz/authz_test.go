package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/auth"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func principalID() string {
	return primitive.NewObjectID().Hex()
}

func TestPrincipalCtx_Anonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	role, uid, ok := authz.PrincipalCtx(req)
	if ok {
		t.Error("expected ok=false for anonymous request")
	}
	if role != "visitor" {
		t.Errorf("role: got %q, want %q", role, "visitor")
	}
	if uid != primitive.NilObjectID {
		t.Errorf("userID: got %v, want NilObjectID", uid)
	}
}

func TestPrincipalCtx_MalformedID(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestPrincipal(req, auth.Principal{ID: "not-an-object-id", Role: "admin"})

	_, _, ok := authz.PrincipalCtx(req)
	if ok {
		t.Error("expected ok=false for malformed principal ID")
	}
	if authz.IsAdmin(req) {
		t.Error("expected IsAdmin=false for malformed principal ID")
	}
}

func TestPrincipalCtx_NormalizesRole(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestPrincipal(req, auth.Principal{ID: principalID(), Role: "Admin"})

	role, _, ok := authz.PrincipalCtx(req)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != "admin" {
		t.Errorf("role: got %q, want %q", role, "admin")
	}
}

func TestRolePredicates(t *testing.T) {
	tests := []struct {
		role        string
		wantAdmin   bool
		wantCreator bool
		wantDonor   bool
	}{
		{"admin", true, true, false},
		{"creator", false, true, false},
		{"donor", false, false, true},
		{"visitor", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req = auth.WithTestPrincipal(req, auth.Principal{ID: principalID(), Role: tt.role})

			if got := authz.IsAdmin(req); got != tt.wantAdmin {
				t.Errorf("IsAdmin = %v, want %v", got, tt.wantAdmin)
			}
			if got := authz.IsCreator(req); got != tt.wantCreator {
				t.Errorf("IsCreator = %v, want %v", got, tt.wantCreator)
			}
			if got := authz.IsDonor(req); got != tt.wantDonor {
				t.Errorf("IsDonor = %v, want %v", got, tt.wantDonor)
			}
		})
	}
}

func TestHasAnyRole(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestPrincipal(req, auth.Principal{ID: principalID(), Role: "creator"})

	if !authz.HasAnyRole(req, "creator", "admin") {
		t.Error("expected creator to match [creator, admin]")
	}
	if authz.HasAnyRole(req, "admin") {
		t.Error("expected creator not to match [admin]")
	}

	anon := httptest.NewRequest("GET", "/test", nil)
	if authz.HasAnyRole(anon, "donor", "creator", "admin") {
		t.Error("expected anonymous to match nothing")
	}
}
