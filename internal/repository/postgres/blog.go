package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"bloglist/internal/domain"
	"bloglist/internal/domain/models"
	"bloglist/internal/domain/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const blogColumns = `id::text, title, author, url, likes, user_id::text, created_at`

// PostgresBlogRepository implements the BlogRepository interface
type PostgresBlogRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(config *RepositoryConfig) repositories.BlogRepository {
	return &PostgresBlogRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

func scanBlog(row pgx.Row) (*models.Blog, error) {
	var blog models.Blog
	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Author,
		&blog.URL,
		&blog.Likes,
		&blog.UserID,
		&blog.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// List retrieves all blogs, oldest first
func (r *PostgresBlogRepository) List(ctx context.Context) ([]models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY created_at, id`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blogs: %w", err)
	}

	return blogs, nil
}

// GetByID retrieves a blog by ID
func (r *PostgresBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	if err := checkID("blog", id); err != nil {
		return nil, err
	}

	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	executor := GetExecutor(ctx, r.pool)
	blog, err := scanBlog(executor.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(fmt.Sprintf("get blog %s", id), err)
	}

	return blog, nil
}

// Create inserts the blog and fills in ID and CreatedAt
func (r *PostgresBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := checkID("user", blog.UserID); err != nil {
		return err
	}

	query := `
		INSERT INTO blogs (title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, created_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.UserID,
	).Scan(&blog.ID, &blog.CreatedAt)
	if err != nil {
		return translateError("create blog", err)
	}

	return nil
}

// Delete permanently removes a blog
func (r *PostgresBlogRepository) Delete(ctx context.Context, id string) error {
	if err := checkID("blog", id); err != nil {
		return err
	}

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return translateError("delete blog", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateLikes sets the like count; the likes CHECK constraint re-validates the row
func (r *PostgresBlogRepository) UpdateLikes(ctx context.Context, id string, likes int) (*models.Blog, error) {
	if err := checkID("blog", id); err != nil {
		return nil, err
	}

	query := `UPDATE blogs SET likes = $1 WHERE id = $2 RETURNING ` + blogColumns

	executor := GetExecutor(ctx, r.pool)
	blog, err := scanBlog(executor.QueryRow(ctx, query, likes, id))
	if err != nil {
		return nil, translateError(fmt.Sprintf("update blog %s", id), err)
	}

	return blog, nil
}

// Count returns the number of stored blogs
func (r *PostgresBlogRepository) Count(ctx context.Context) (int, error) {
	var n int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}
	return n, nil
}
