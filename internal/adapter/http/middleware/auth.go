package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// UserContextKey is the context key for the authenticated user.
	UserContextKey ContextKey = "user"
)

// AuthMiddleware creates an authentication middleware. Browser clients carry
// the session token in the fm_session cookie; API clients may use a Bearer
// header instead. The cookie wins when both are present.
func AuthMiddleware(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				http.Error(w, "missing session", http.StatusUnauthorized)
				return
			}

			user, err := sessions.Verify(token)
			if err != nil {
				http.Error(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

// GetUserFromContext extracts the authenticated user from context.
func GetUserFromContext(ctx context.Context) (*auth.SessionUser, bool) {
	user, ok := ctx.Value(UserContextKey).(*auth.SessionUser)
	return user, ok
}
