package services

import (
	"context"

	"bloglist/internal/domain/models"
)

// RegisterUserRequest is the input schema for registration
type RegisterUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the input schema for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserService defines business logic operations for users
type UserService interface {
	// Register creates a user with a hashed password
	Register(ctx context.Context, req *RegisterUserRequest) (*models.User, error)

	// ListUsers retrieves all users
	ListUsers(ctx context.Context) ([]models.User, error)
}

// LoginService checks credentials and issues identity tokens
type LoginService interface {
	Login(ctx context.Context, req *LoginRequest) (*models.LoginResult, error)
}
