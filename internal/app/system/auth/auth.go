// Package auth verifies bearer tokens and exposes the authenticated
// principal to handlers via the request context.
//
// Token issuance (login, registration, password handling) lives in the
// identity provider. This service only needs the shared signing secret
// to verify tokens carrying {userId, role} claims.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Principal is the authenticated actor performing a request.
type Principal struct {
	ID   string // user ObjectID hex
	Role string // donor | creator | admin
}

type ctxKey string

const principalKey ctxKey = "principal"

// CurrentPrincipal returns the request's principal and a found flag.
// ok=false means the request is anonymous.
func CurrentPrincipal(r *http.Request) (Principal, bool) {
	p, ok := r.Context().Value(principalKey).(Principal)
	return p, ok
}

// WithTestPrincipal attaches a principal to the request context.
// Handler tests use this instead of minting real tokens.
func WithTestPrincipal(r *http.Request, p Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), principalKey, p))
}

// Verifier parses and validates bearer tokens.
type Verifier struct {
	secret []byte
	log    *zap.Logger
}

// NewVerifier builds a Verifier for the given signing secret.
func NewVerifier(secret string, logger *zap.Logger) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if len(secret) < 32 {
		logger.Warn("jwt secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	return &Verifier{secret: []byte(secret), log: logger}, nil
}

// claims is the token payload issued by the identity provider.
type claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is returned for malformed, mis-signed, or expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Parse validates a raw token string and extracts the principal.
func (v *Verifier) Parse(raw string) (Principal, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return Principal{}, ErrInvalidToken
	}
	if c.UserID == "" {
		return Principal{}, ErrInvalidToken
	}
	return Principal{ID: c.UserID, Role: strings.ToLower(c.Role)}, nil
}

// LoadPrincipal is router-level middleware: if a valid bearer token is
// present, the principal is placed in context; otherwise the request
// continues anonymously. Per-operation checks decide whether anonymous
// access is acceptable.
func (v *Verifier) LoadPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw != "" {
			if p, err := v.Parse(raw); err == nil {
				r = WithTestPrincipal(r, p)
			} else {
				v.log.Debug("rejected bearer token", zap.Error(err))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// IssueToken signs a token for the given principal. Exposed for tests
// and local tooling; production tokens come from the identity provider.
func (v *Verifier) IssueToken(p Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: p.ID,
		Role:   p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return tok.SignedString(v.secret)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
