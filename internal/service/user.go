package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bloglist/internal/config"
	"bloglist/internal/domain"
	"bloglist/internal/domain/models"
	"bloglist/internal/domain/repositories"
	"bloglist/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/crypto/bcrypt"
)

// userService implements the UserService interface
type userService struct {
	userRepo   repositories.UserRepository
	bcryptCost int
	logger     *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, bcryptCost int, logger *slog.Logger) services.UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a user; the username must not be taken
func (s *userService) Register(ctx context.Context, req *services.RegisterUserRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateRegisterRequest(req); err != nil {
		return nil, domain.NewValidationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &domain.ValidationError{Message: "password: the length must be no more than 72."}
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		Blogs:        []string{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		"id", user.ID,
		"username", user.Username,
	)

	return user, nil
}

// ListUsers retrieves all users
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// validateRegisterRequest validates a registration request
func validateRegisterRequest(req *services.RegisterUserRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username,
			validation.Required,
			validation.RuneLength(config.MinUsernameLength, config.MaxUsernameLength),
		),
		validation.Field(&req.Password,
			validation.Required,
			validation.RuneLength(config.MinPasswordLength, 0),
		),
	)
}
