package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/voltlab/device-hub/internal/domain"
	"github.com/voltlab/device-hub/internal/service"
)

type contextKey string

const (
	UserKey contextKey = "user"

	// CookieName is the session cookie carried by every authenticated
	// request.
	CookieName = "token"
)

// SessionToken extracts the raw session token from the request cookie.
// Returns the empty string when the cookie is absent.
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// CurrentUser resolves the session cookie to a user and rejects the request
// with 401 when it cannot.
func CurrentUser(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authService.GetCurrentUser(r.Context(), SessionToken(r))
			if err != nil {
				log.Printf("ERROR [middleware.CurrentUser] session rejected: %v", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}
