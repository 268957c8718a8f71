package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/NikhilaRaj7337/uga-nutrition-app/session"
)

type contextKey string

const (
	StateContextKey contextKey = "session_state"
	TokenContextKey contextKey = "session_token"
)

// SessionMiddleware resolves the bearer token to live session state
// and injects it into the request context. Missing, malformed, or
// expired tokens get 401 before any handler runs.
func SessionMiddleware(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized: No Authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Unauthorized: Invalid Authorization format", http.StatusUnauthorized)
				return
			}
			token := parts[1]

			state, err := store.Get(token)
			if err != nil {
				http.Error(w, "Unauthorized: Invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), StateContextKey, state)
			ctx = context.WithValue(ctx, TokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
