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

const userColumns = `id::text, username, name, password_hash, blog_ids::text[], created_at`

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Blogs,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if user.Blogs == nil {
		user.Blogs = []string{}
	}
	return &user, nil
}

// Create inserts the user; a taken username yields *domain.UniquenessError
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id::text, blog_ids::text[], created_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		user.Username,
		user.Name,
		user.PasswordHash,
	).Scan(&user.ID, &user.Blogs, &user.CreatedAt)
	if err != nil {
		return translateError("create user", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := checkID("user", id); err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	executor := GetExecutor(ctx, r.pool)
	user, err := scanUser(executor.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(fmt.Sprintf("get user %s", id), err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	executor := GetExecutor(ctx, r.pool)
	user, err := scanUser(executor.QueryRow(ctx, query, username))
	if err != nil {
		return nil, translateError(fmt.Sprintf("get user %q", username), err)
	}

	return user, nil
}

// List retrieves all users, oldest first
func (r *PostgresUserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// AppendBlog appends blogID to the user's owned blog list
func (r *PostgresUserRepository) AppendBlog(ctx context.Context, userID, blogID string) error {
	return r.updateBlogIDs(ctx, "append blog", `array_append(blog_ids, $2::uuid)`, userID, blogID)
}

// RemoveBlog detaches blogID from the user's owned blog list
func (r *PostgresUserRepository) RemoveBlog(ctx context.Context, userID, blogID string) error {
	return r.updateBlogIDs(ctx, "remove blog", `array_remove(blog_ids, $2::uuid)`, userID, blogID)
}

func (r *PostgresUserRepository) updateBlogIDs(ctx context.Context, op, expr, userID, blogID string) error {
	if err := checkID("user", userID); err != nil {
		return err
	}
	if err := checkID("blog", blogID); err != nil {
		return err
	}

	query := `UPDATE users SET blog_ids = ` + expr + ` WHERE id = $1`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, userID, blogID)
	if err != nil {
		return translateError(op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// Count returns the number of registered users
func (r *PostgresUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
