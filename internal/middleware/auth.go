package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/auth"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/response"
)

type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth verifies the bearer token on the request and stores the
// subject identity in the request context. Requests without a valid token
// are rejected with 401.
func RequireAuth(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			subject, err := verifier.Verify(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id stored by RequireAuth, or an
// empty string when the request was not authenticated.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
