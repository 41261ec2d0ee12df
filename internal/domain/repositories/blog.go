package repositories

import (
	"context"

	"bloglist/internal/domain/models"
)

// BlogRepository defines data access operations for blogs.
// Implementations return domain.ErrMalformedID for IDs of the wrong shape,
// domain.ErrNotFound for unknown IDs and *domain.ValidationError when a
// stored constraint is violated.
type BlogRepository interface {
	// List retrieves all blogs, oldest first
	List(ctx context.Context) ([]models.Blog, error)

	// GetByID retrieves a blog by ID
	GetByID(ctx context.Context, id string) (*models.Blog, error)

	// Create inserts the blog and fills in ID and CreatedAt
	Create(ctx context.Context, blog *models.Blog) error

	// Delete permanently removes a blog
	Delete(ctx context.Context, id string) error

	// UpdateLikes sets the like count and returns the updated blog
	UpdateLikes(ctx context.Context, id string, likes int) (*models.Blog, error)

	// Count returns the number of stored blogs
	Count(ctx context.Context) (int, error)
}
