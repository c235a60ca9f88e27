// internal/app/features/adminusers/adminusers.go
//
// Package adminusers serves the admin user directory: a paginated,
// filterable listing of every account on the platform.
package adminusers

import (
	"context"
	"net/http"

	userstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/users"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/authz"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/paging"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// defaultLimit for the user directory; wider than campaign pages.
const defaultLimit = 20

type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Users *userstore.Store
}

func New(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, Users: userstore.New(db)}
}

// Routes mounts the admin user endpoints, all admin-only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authz.RequireRole(models.RoleAdmin))
	r.Get("/", h.HandleList)
	return r
}

// HandleList processes GET /admin/users with optional role filter and
// name/email search.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := userstore.ListQuery{
		Role:   query.Get(r, "role"),
		Search: query.Get(r, "search"),
		Page:   paging.Parse(r, defaultLimit),
	}
	if q.Role != "" && !models.IsValidRole(q.Role) {
		httpjson.Error(w, h.Log, apperr.Validation("role must be donor, creator, or admin"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, total, err := h.Users.List(ctx, q)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Internal("list users", err))
		return
	}

	httpjson.OK(w, http.StatusOK, "", httpjson.Envelope{
		"users":       users,
		"count":       len(users),
		"total":       total,
		"totalPages":  q.Page.TotalPages(total),
		"currentPage": q.Page.Number,
	})
}
