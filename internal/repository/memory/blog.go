package memory

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"bloglist/internal/domain"
	"bloglist/internal/domain/models"

	"github.com/google/uuid"
)

// maxLikes matches the INTEGER likes column of the postgres store
const maxLikes = math.MaxInt32

// BlogRepository implements repositories.BlogRepository over a Store
type BlogRepository struct {
	store *Store
}

// List retrieves all blogs, oldest first
func (r *BlogRepository) List(ctx context.Context) ([]models.Blog, error) {
	r.store.mu.RLock()
	recs := make([]blogRecord, 0, len(r.store.blogs))
	for _, rec := range r.store.blogs {
		b := *rec.blog
		recs = append(recs, blogRecord{seq: rec.seq, blog: &b})
	}
	r.store.mu.RUnlock()

	slices.SortFunc(recs, func(a, b blogRecord) int { return cmp.Compare(a.seq, b.seq) })

	blogs := make([]models.Blog, 0, len(recs))
	for _, rec := range recs {
		blogs = append(blogs, *rec.blog)
	}
	return blogs, nil
}

// GetByID retrieves a blog by ID
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	if err := parseID("blog", id); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.blogs[id]
	if !ok {
		return nil, fmt.Errorf("blog %s: %w", id, domain.ErrNotFound)
	}
	b := *rec.blog
	return &b, nil
}

// Create inserts the blog, assigning ID and CreatedAt
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := validateLikes(blog.Likes); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	blog.ID = uuid.NewString()
	blog.CreatedAt = r.store.now()

	r.store.touchBlog(ctx, blog.ID)
	b := *blog
	r.store.blogs[blog.ID] = &blogRecord{seq: r.store.nextSeq(), blog: &b}
	return nil
}

// Delete permanently removes a blog
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	if err := parseID("blog", id); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.blogs[id]; !ok {
		return fmt.Errorf("blog %s: %w", id, domain.ErrNotFound)
	}
	r.store.touchBlog(ctx, id)
	delete(r.store.blogs, id)
	return nil
}

// UpdateLikes sets the like count after re-checking the stored constraint
func (r *BlogRepository) UpdateLikes(ctx context.Context, id string, likes int) (*models.Blog, error) {
	if err := parseID("blog", id); err != nil {
		return nil, err
	}
	if err := validateLikes(likes); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.blogs[id]
	if !ok {
		return nil, fmt.Errorf("blog %s: %w", id, domain.ErrNotFound)
	}
	r.store.touchBlog(ctx, id)

	b := *rec.blog
	b.Likes = likes
	r.store.blogs[id] = &blogRecord{seq: rec.seq, blog: &b}

	out := b
	return &out, nil
}

// Count returns the number of stored blogs
func (r *BlogRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.blogs), nil
}

func validateLikes(likes int) error {
	switch {
	case likes < 0:
		return &domain.ValidationError{Message: "likes: must be no less than 0."}
	case likes > maxLikes:
		return &domain.ValidationError{Message: fmt.Sprintf("likes: must be no greater than %d.", maxLikes)}
	}
	return nil
}
