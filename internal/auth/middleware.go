package auth

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/scripturalzealous/zealous-api/pkg/response"
	"github.com/scripturalzealous/zealous-api/pkg/util"
)

type contextKey string

const (
	userContextKey   contextKey = "user"
	userIDContextKey contextKey = "user_id"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, http.StatusUnauthorized, "Missing Authorization header", "user not logged in")
			return
		}

		// Must start with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(w, http.StatusUnauthorized, "Invalid token format", "")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := util.ValidateJWT(tokenStr)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token", "")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		ctx = context.WithValue(ctx, userIDContextKey, claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware attaches the user to the context when a valid
// bearer token is present but lets anonymous requests through untouched.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := util.ValidateJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		ctx = context.WithValue(ctx, userIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware must run after AuthMiddleware. The admin flag is checked
// against the database, not the token.
func AdminMiddleware(repo Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserIDFromContext(r)
			if !ok {
				response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
				return
			}

			isAdmin, err := repo.IsAdmin(r.Context(), userID)
			if err != nil {
				// Generic message only; no internal detail to the client.
				log.Println("Admin verification failed")
				response.Error(w, http.StatusForbidden, "Access denied", "")
				return
			}
			if !isAdmin {
				response.Error(w, http.StatusForbidden, "Access denied", "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GetUserFromContext(r *http.Request) (*util.Claims, bool) {
	claims, ok := r.Context().Value(userContextKey).(*util.Claims)
	return claims, ok
}

func GetUserIDFromContext(r *http.Request) (int, bool) {
	id, ok := r.Context().Value(userIDContextKey).(int)
	return id, ok
}
