package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pulselytics/pulselytics-go/internal/model"
	"github.com/pulselytics/pulselytics-go/internal/service"
)

type contextKey string

const currentUserKey contextKey = "currentUser"

// RequireAuth returns middleware that resolves the Bearer token from
// the Authorization header to a stored user. Requests with a missing or
// invalid token, or whose user no longer exists, are rejected with 401.
// A nil auth service (store not connected) also rejects with 401.
func RequireAuth(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "Missing token")
				return
			}

			if auth == nil {
				writeJSONError(w, http.StatusUnauthorized, "User not found")
				return
			}

			user, err := auth.CurrentUser(r.Context(), token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUserFromContext extracts the authenticated user set by
// RequireAuth.
func CurrentUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*model.User)
	return user, ok
}

// BearerToken extracts the token from an "Authorization: Bearer ..."
// header. The second return value reports whether a token was present.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
