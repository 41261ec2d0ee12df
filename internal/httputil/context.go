package httputil

import (
	"context"
	"net/http"

	"bloglist/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	tokenKey contextKey = "token"
	userKey  contextKey = "user"
)

// WithToken adds the raw bearer token to the request context
func WithToken(r *http.Request, token string) *http.Request {
	ctx := context.WithValue(r.Context(), tokenKey, token)
	return r.WithContext(ctx)
}

// GetToken retrieves the bearer token, returns empty string if none was sent
func GetToken(r *http.Request) string {
	token, _ := r.Context().Value(tokenKey).(string)
	return token
}

// WithUser adds the resolved user to the request context
func WithUser(r *http.Request, user *models.User) *http.Request {
	ctx := context.WithValue(r.Context(), userKey, user)
	return r.WithContext(ctx)
}

// GetUser retrieves the resolved user, returns nil if the request is anonymous
func GetUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userKey).(*models.User)
	return user
}
