package auth

import (
	"context"
	"errors"
	"log/slog"

	"bloglist/internal/auth"
	"bloglist/internal/domain"
	"bloglist/internal/domain/models"
	"bloglist/internal/domain/repositories"
	"bloglist/internal/domain/services"
)

// identityResolver resolves bearer tokens to live users.
// It never writes: a resolution is a verified read or a classified failure.
type identityResolver struct {
	codec    auth.TokenCodec
	userRepo repositories.UserRepository
	logger   *slog.Logger
}

// NewIdentityResolver creates a resolver over the token codec and the credential store
func NewIdentityResolver(codec auth.TokenCodec, userRepo repositories.UserRepository, logger *slog.Logger) services.IdentityResolver {
	return &identityResolver{
		codec:    codec,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Resolve verifies token and loads its subject
func (r *identityResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, domain.Unauthorized(domain.MsgTokenMissing, nil)
	}

	claims, err := r.codec.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return nil, domain.Unauthorized(domain.MsgTokenExpired, err)
		}
		return nil, domain.Unauthorized(domain.MsgTokenInvalid, err)
	}

	userID := claims.GetUserID()
	if userID == "" {
		r.logger.Debug("token missing id claim")
		return nil, domain.Unauthorized(domain.MsgTokenInvalid, domain.ErrTokenInvalid)
	}

	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrMalformedID) {
			r.logger.Debug("token subject not found", "user_id", userID)
			return nil, domain.Unauthorized(domain.MsgUserNotFound, err)
		}
		return nil, err
	}

	return user, nil
}
