package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/usecase"
)

type contextKey string

const claimsKey contextKey = "claims"

// Auth validates the bearer token and rejects unknown identities before
// any store access. Handlers read the claims from the request context.
func Auth(authService *usecase.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "authorization header required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "invalid authorization format")
				return
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom returns the authenticated operator claims, if any.
func ClaimsFrom(ctx context.Context) (*usecase.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*usecase.Claims)
	return claims, ok
}

// CanAccessUser reports whether the token may touch the given collection:
// admins read anything, users only their own.
func CanAccessUser(claims *usecase.Claims, userID string) bool {
	if claims.Role == entity.RoleAdmin {
		return true
	}
	return claims.OperatorID == userID
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
