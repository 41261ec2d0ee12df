package services

import (
	"context"

	"bloglist/internal/domain/models"
)

// IdentityResolver turns a raw bearer token into a live user.
// All failures are *domain.UnauthorizedError.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// BlogAuthorizer decides whether a user may mutate a blog.
// Returns nil when allowed, *domain.ForbiddenError otherwise.
type BlogAuthorizer interface {
	AuthorizeDelete(user *models.User, blog *models.Blog) error
	AuthorizeUpdate(user *models.User, blog *models.Blog) error
}
