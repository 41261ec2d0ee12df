package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bloglist/internal/auth"
	"bloglist/internal/domain"
	"bloglist/internal/domain/models"
	"bloglist/internal/domain/repositories"
	"bloglist/internal/domain/services"

	"golang.org/x/crypto/bcrypt"
)

// loginService implements the LoginService interface
type loginService struct {
	userRepo repositories.UserRepository
	codec    auth.TokenCodec
	logger   *slog.Logger
}

// NewLoginService creates a new login service
func NewLoginService(userRepo repositories.UserRepository, codec auth.TokenCodec, logger *slog.Logger) services.LoginService {
	return &loginService{
		userRepo: userRepo,
		codec:    codec,
		logger:   logger,
	}
}

// Login checks the password and issues a token. Unknown usernames and wrong
// passwords fail the same way.
func (s *loginService) Login(ctx context.Context, req *services.LoginRequest) (*models.LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Unauthorized(domain.MsgInvalidCredentials, nil)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login failed", "username", req.Username)
		return nil, domain.Unauthorized(domain.MsgInvalidCredentials, nil)
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &models.LoginResult{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
