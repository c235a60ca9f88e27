// internal/app/system/authz/middleware.go
package authz

import (
	"net/http"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/httpjson"
)

// RequireAuth rejects requests without a valid authenticated principal.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := PrincipalCtx(r); !ok {
			httpjson.Fail(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole returns middleware that rejects principals outside the
// given roles. Anonymous requests get 401; authenticated principals
// with the wrong role get 403.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, _, ok := PrincipalCtx(r); !ok {
				httpjson.Fail(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !HasAnyRole(r, roles...) {
				httpjson.Fail(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
