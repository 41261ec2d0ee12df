package services

import (
	"context"

	"bloglist/internal/domain/models"
)

// CreateBlogRequest is the input schema for creating a blog
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"` // defaults to 0
}

// UpdateLikesRequest is the input schema for setting a blog's like count
type UpdateLikesRequest struct {
	Likes *int `json:"likes"`
}

// BlogService defines business logic operations for blogs
type BlogService interface {
	// ListBlogs retrieves all blogs
	ListBlogs(ctx context.Context) ([]models.Blog, error)

	// GetBlog retrieves a blog by ID
	GetBlog(ctx context.Context, id string) (*models.Blog, error)

	// CreateBlog creates a blog owned by owner and links it to the owner's list
	CreateBlog(ctx context.Context, owner *models.User, req *CreateBlogRequest) (*models.Blog, error)

	// DeleteBlog removes a blog if caller owns it
	DeleteBlog(ctx context.Context, caller *models.User, id string) error

	// UpdateLikes sets the like count. caller may be nil unless the
	// owner-only guard is enabled.
	UpdateLikes(ctx context.Context, caller *models.User, id string, req *UpdateLikesRequest) (*models.Blog, error)

	// Stats returns the total likes and the most liked blog
	Stats(ctx context.Context) (*models.BlogStats, error)
}
