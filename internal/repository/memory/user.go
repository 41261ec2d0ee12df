package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"bloglist/internal/domain"
	"bloglist/internal/domain/models"

	"github.com/google/uuid"
)

// UserRepository implements repositories.UserRepository over a Store
type UserRepository struct {
	store *Store
}

// Create inserts the user, enforcing username uniqueness
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range r.store.users {
		if rec.user.Username == user.Username {
			return &domain.UniquenessError{Field: "username"}
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = r.store.now()
	if user.Blogs == nil {
		user.Blogs = []string{}
	}

	r.store.touchUser(ctx, user.ID)
	r.store.users[user.ID] = &userRecord{seq: r.store.nextSeq(), user: cloneUser(user)}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := parseID("user", id); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return cloneUser(rec.user), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rec := range r.store.users {
		if rec.user.Username == username {
			return cloneUser(rec.user), nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
}

// List retrieves all users, oldest first
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	r.store.mu.RLock()
	recs := make([]*userRecord, 0, len(r.store.users))
	for _, rec := range r.store.users {
		recs = append(recs, rec)
	}
	users := make([]models.User, 0, len(recs))
	slices.SortFunc(recs, func(a, b *userRecord) int { return cmp.Compare(a.seq, b.seq) })
	for _, rec := range recs {
		users = append(users, *cloneUser(rec.user))
	}
	r.store.mu.RUnlock()

	return users, nil
}

// AppendBlog appends blogID to the user's owned blog list
func (r *UserRepository) AppendBlog(ctx context.Context, userID, blogID string) error {
	return r.updateBlogs(ctx, userID, func(blogs []string) []string {
		return append(blogs, blogID)
	})
}

// RemoveBlog detaches blogID from the user's owned blog list
func (r *UserRepository) RemoveBlog(ctx context.Context, userID, blogID string) error {
	return r.updateBlogs(ctx, userID, func(blogs []string) []string {
		return slices.DeleteFunc(blogs, func(v string) bool { return v == blogID })
	})
}

func (r *UserRepository) updateBlogs(ctx context.Context, userID string, fn func([]string) []string) error {
	if err := parseID("user", userID); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	r.store.touchUser(ctx, userID)

	u := cloneUser(rec.user)
	u.Blogs = fn(u.Blogs)
	r.store.users[userID] = &userRecord{seq: rec.seq, user: u}
	return nil
}

// Count returns the number of registered users
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.users), nil
}
