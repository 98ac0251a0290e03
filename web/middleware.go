package web

import (
	"context"
	"net/http"
)

type contextKey string

const sessionContextKey contextKey = "session"

// sessionFromContext returns the verified session claims, or nil outside the
// authenticated route group.
func sessionFromContext(ctx context.Context) *SessionClaims {
	claims, _ := ctx.Value(sessionContextKey).(*SessionClaims)
	return claims
}

// RequireAdmin gates a route group behind a valid admin session. Anyone
// without one, customers included, is sent to the signin page.
func RequireAdmin(sessions *SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := sessions.Verify(r)
			if err != nil {
				flashError(w, "Please sign in to continue")
				http.Redirect(w, r, "/signin", http.StatusSeeOther)
				return
			}
			if !claims.IsAdmin {
				flashError(w, "Administrator access required")
				http.Redirect(w, r, "/signin", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
