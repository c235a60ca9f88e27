package adminusers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/features/adminusers"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := adminusers.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Admin", "admin@example.com", models.RoleAdmin)
	fixtures.CreateUser(ctx, "Creator", "creator@example.com", models.RoleCreator)
	fixtures.CreateUser(ctx, "Donor", "donor@example.com", models.RoleDonor)

	req := httptest.NewRequest("GET", "/api/admin/users?role=donor", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got := body["total"].(float64); got != 1 {
		t.Errorf("total: got %v, want 1", got)
	}
	users := body["users"].([]any)
	u := users[0].(map[string]any)
	if u["name"] != "Donor" {
		t.Errorf("name: got %v", u["name"])
	}
	if _, ok := u["passwordHash"]; ok {
		t.Error("credential field leaked into response")
	}
}

func TestHandleList_BadRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := adminusers.New(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/admin/users?role=superuser", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestRoutes_RequireAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := adminusers.New(db, zap.NewNop())
	router := adminusers.Routes(h)

	// Anonymous
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: got %d, want 401", rec.Code)
	}

	// Wrong role
	req = httptest.NewRequest("GET", "/", nil)
	req = testutil.WithUser(req, testutil.DonorUser())
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("donor: got %d, want 403", rec.Code)
	}
}
