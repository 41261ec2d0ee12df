package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bloglist/internal/config"
	"bloglist/internal/domain"
	"bloglist/internal/domain/models"
	"bloglist/internal/domain/repositories"
	"bloglist/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BlogServiceOptions toggles optional behavior of the blog service
type BlogServiceOptions struct {
	// RequireOwnerForLikes makes UpdateLikes demand an identity that owns the blog.
	// Off by default: any caller may set any blog's like count.
	RequireOwnerForLikes bool
}

// blogService implements the BlogService interface
type blogService struct {
	blogRepo   repositories.BlogRepository
	userRepo   repositories.UserRepository
	txManager  repositories.TransactionManager
	authorizer services.BlogAuthorizer
	opts       BlogServiceOptions
	logger     *slog.Logger
}

// NewBlogService creates a new blog service
func NewBlogService(
	blogRepo repositories.BlogRepository,
	userRepo repositories.UserRepository,
	txManager repositories.TransactionManager,
	authorizer services.BlogAuthorizer,
	opts BlogServiceOptions,
	logger *slog.Logger,
) services.BlogService {
	return &blogService{
		blogRepo:   blogRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		authorizer: authorizer,
		opts:       opts,
		logger:     logger,
	}
}

// ListBlogs retrieves all blogs
func (s *blogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.List(ctx)
}

// GetBlog retrieves a blog by ID
func (s *blogService) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

// CreateBlog stores the blog and appends it to the owner's list in one transaction
func (s *blogService) CreateBlog(ctx context.Context, owner *models.User, req *services.CreateBlogRequest) (*models.Blog, error) {
	if owner == nil {
		return nil, domain.Unauthorized(domain.MsgTokenMissing, nil)
	}

	if err := validateCreateRequest(req); err != nil {
		return nil, domain.NewValidationError(err)
	}

	blog := &models.Blog{
		Title:  strings.TrimSpace(req.Title),
		Author: strings.TrimSpace(req.Author),
		URL:    strings.TrimSpace(req.URL),
		UserID: owner.ID,
	}
	if req.Likes != nil {
		blog.Likes = *req.Likes
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.blogRepo.Create(ctx, blog); err != nil {
			return err
		}
		return s.userRepo.AppendBlog(ctx, owner.ID, blog.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	s.logger.Info("blog created",
		"id", blog.ID,
		"title", blog.Title,
		"user_id", owner.ID,
	)

	return blog, nil
}

// DeleteBlog removes a blog owned by caller and detaches it from the owner's list
func (s *blogService) DeleteBlog(ctx context.Context, caller *models.User, id string) error {
	if caller == nil {
		return domain.Unauthorized(domain.MsgTokenMissing, nil)
	}

	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizer.AuthorizeDelete(caller, blog); err != nil {
		s.logger.Info("blog delete denied",
			"id", id,
			"user_id", caller.ID,
			"owner_id", blog.UserID,
		)
		return err
	}

	err = s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.blogRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.userRepo.RemoveBlog(ctx, blog.UserID, id)
	})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	s.logger.Info("blog deleted",
		"id", id,
		"user_id", caller.ID,
	)

	return nil
}

// UpdateLikes sets the blog's like count to the requested value
func (s *blogService) UpdateLikes(ctx context.Context, caller *models.User, id string, req *services.UpdateLikesRequest) (*models.Blog, error) {
	if err := validateUpdateLikesRequest(req); err != nil {
		return nil, domain.NewValidationError(err)
	}

	if s.opts.RequireOwnerForLikes {
		if caller == nil {
			return nil, domain.Unauthorized(domain.MsgTokenMissing, nil)
		}
		blog, err := s.blogRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.authorizer.AuthorizeUpdate(caller, blog); err != nil {
			return nil, err
		}
	}

	blog, err := s.blogRepo.UpdateLikes(ctx, id, *req.Likes)
	if err != nil {
		return nil, err
	}

	s.logger.Info("blog likes updated",
		"id", id,
		"likes", blog.Likes,
	)

	return blog, nil
}

// Stats sums likes over all blogs and picks the most liked one.
// Ties go to the blog listed first.
func (s *blogService) Stats(ctx context.Context) (*models.BlogStats, error) {
	blogs, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.BlogStats{}
	for i := range blogs {
		stats.TotalLikes += blogs[i].Likes
		if stats.Favorite == nil || blogs[i].Likes > stats.Favorite.Likes {
			stats.Favorite = &blogs[i]
		}
	}

	return stats, nil
}

// validateCreateRequest validates a create blog request
func validateCreateRequest(req *services.CreateBlogRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.By(notBlank),
			validation.RuneLength(1, config.MaxBlogTitleLength),
		),
		validation.Field(&req.URL,
			validation.Required,
			validation.By(notBlank),
			validation.RuneLength(1, config.MaxBlogURLLength),
		),
		validation.Field(&req.Likes, validation.Min(0), validation.Max(config.MaxBlogLikes)),
	)
}

// validateUpdateLikesRequest validates an update likes request
func validateUpdateLikesRequest(req *services.UpdateLikesRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Likes, validation.NotNil, validation.Min(0), validation.Max(config.MaxBlogLikes)),
	)
}

// notBlank rejects whitespace-only strings
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "cannot be blank")
	}
	return nil
}
