package middleware

import (
	"net/http"
	"strings"

	"noir-be/internal/admin"
	"noir-be/internal/httpx"
)

// extractToken prefers the admin_token cookie, falling back to a
// Bearer header.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("admin_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// AdminOnly rejects requests that do not carry a valid admin token.
func AdminOnly(auth *admin.Auth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "admin token required")
				return
			}

			if err := auth.Verify(token); err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
