package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type contextKey string

const AdminSubjectKey contextKey = "admin_subject"

// RequireBearer rejects requests without a valid "Authorization: Bearer" token
// and stores the token subject under AdminSubjectKey.
func RequireBearer(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				http.Error(w, "Unauthorized: missing bearer token", http.StatusUnauthorized)
				return
			}

			subject, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AdminSubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
