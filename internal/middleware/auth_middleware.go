package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itsGods/Notes-to-Store/pkg/jwt"
	"github.com/itsGods/Notes-to-Store/pkg/response"
)

type contextKey string

const OwnerIDKey contextKey = "ownerID"

func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := jwt.ValidateToken(parts[1], jwtSecret)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), OwnerIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOwnerID returns the authenticated principal, or "" outside the
// protected routes.
func GetOwnerID(r *http.Request) string {
	ownerID, ok := r.Context().Value(OwnerIDKey).(string)
	if !ok {
		return ""
	}
	return ownerID
}
