package auth

import (
	"companion-lab/domain"
	"companion-lab/errors"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const UserKey contextKey = "user"

// Authenticator resolves a bearer token to the signed in profile.
type Authenticator func(token string) (domain.UserProfile, error)

// Middleware rejects requests without a valid "Bearer <token>" header and
// injects the resolved profile into the request context.
func Middleware(authenticate Authenticator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			http.Error(w, "authorization token is missing", http.StatusUnauthorized)
			return
		}

		user, err := authenticate(token)
		if err != nil {
			http.Error(w, errors.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func WithUser(ctx context.Context, user domain.UserProfile) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func UserFromContext(ctx context.Context) (domain.UserProfile, bool) {
	user, ok := ctx.Value(UserKey).(domain.UserProfile)
	return user, ok
}
