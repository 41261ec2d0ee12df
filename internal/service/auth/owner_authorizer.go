package auth

import (
	"bloglist/internal/domain"
	"bloglist/internal/domain/models"
	"bloglist/internal/domain/services"
)

// OwnerAuthorizer implements BlogAuthorizer using ownership checks.
// A user may mutate a blog only if they created it.
type OwnerAuthorizer struct{}

// NewOwnerAuthorizer creates a new ownership-based authorizer
func NewOwnerAuthorizer() services.BlogAuthorizer {
	return OwnerAuthorizer{}
}

// AuthorizeDelete allows the delete iff the user owns the blog
func (OwnerAuthorizer) AuthorizeDelete(user *models.User, blog *models.Blog) error {
	return checkOwner(user, blog, domain.MsgDeleteForbidden)
}

// AuthorizeUpdate allows the update iff the user owns the blog
func (OwnerAuthorizer) AuthorizeUpdate(user *models.User, blog *models.Blog) error {
	return checkOwner(user, blog, domain.MsgUpdateForbidden)
}

func checkOwner(user *models.User, blog *models.Blog, message string) error {
	if user == nil || blog == nil || user.ID == "" || blog.UserID != user.ID {
		return &domain.ForbiddenError{Message: message}
	}
	return nil
}
