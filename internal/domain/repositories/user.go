package repositories

import (
	"context"

	"bloglist/internal/domain/models"
)

// UserRepository defines data access operations for users (the credential store)
type UserRepository interface {
	// Create inserts the user; a taken username yields *domain.UniquenessError
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// List retrieves all users, oldest first
	List(ctx context.Context) ([]models.User, error)

	// AppendBlog appends blogID to the user's owned blog list
	AppendBlog(ctx context.Context, userID, blogID string) error

	// RemoveBlog detaches blogID from the user's owned blog list
	RemoveBlog(ctx context.Context, userID, blogID string) error

	// Count returns the number of registered users
	Count(ctx context.Context) (int, error)
}
