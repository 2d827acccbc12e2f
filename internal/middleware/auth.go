package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/jwt"
)

// Key to store the authenticated user in the request context
type key int

const userKey key = 0

type Auth struct {
	jwt jwt.JwtService
}

func NewAuth(jwtService jwt.JwtService) *Auth {
	return &Auth{jwt: jwtService}
}

// NeedAuth rejects requests without a valid bearer access token and puts
// the decoded user into the request context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				http.Error(w, "Missing authentication", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return nil, errNoToken
	}
	user, err := a.jwt.DecodeAccessToken(token)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the authenticated user or nil.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
