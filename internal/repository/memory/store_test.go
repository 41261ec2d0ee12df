package memory

import (
	"context"
	"errors"
	"math"
	"testing"

	"bloglist/internal/domain"
	"bloglist/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	blogs := NewStore().Blogs()

	blog := &models.Blog{Title: "Test1", Author: "Zane", URL: "www.zzz.com", UserID: "u"}
	require.NoError(t, blogs.Create(ctx, blog))
	require.NotEmpty(t, blog.ID)
	assert.False(t, blog.CreatedAt.IsZero())

	got, err := blogs.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, *blog, *got)

	updated, err := blogs.UpdateLikes(ctx, blog.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Likes)

	require.NoError(t, blogs.Delete(ctx, blog.ID))
	_, err = blogs.GetByID(ctx, blog.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, blogs.Delete(ctx, blog.ID), domain.ErrNotFound)
}

func TestBlogRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	blogs := NewStore().Blogs()

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, blogs.Create(ctx, &models.Blog{Title: title, URL: "u"}))
	}

	list, err := blogs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Title)
	assert.Equal(t, "c", list[2].Title)
}

func TestBlogRepository_MalformedID(t *testing.T) {
	ctx := context.Background()
	blogs := NewStore().Blogs()

	_, err := blogs.GetByID(ctx, "5a3d5da59070081a82a3445")
	assert.ErrorIs(t, err, domain.ErrMalformedID)
	assert.ErrorIs(t, blogs.Delete(ctx, "nope"), domain.ErrMalformedID)
	_, err = blogs.UpdateLikes(ctx, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrMalformedID)
}

func TestBlogRepository_UpdateLikesRevalidates(t *testing.T) {
	ctx := context.Background()
	blogs := NewStore().Blogs()

	blog := &models.Blog{Title: "t", URL: "u"}
	require.NoError(t, blogs.Create(ctx, blog))

	_, err := blogs.UpdateLikes(ctx, blog.ID, -1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = blogs.UpdateLikes(ctx, blog.ID, math.MaxInt32+1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = blogs.Create(ctx, &models.Blog{Title: "t", URL: "u", Likes: math.MaxInt32 + 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := blogs.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Likes)
}

func TestUserRepository_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	require.NoError(t, users.Create(ctx, &models.User{Username: "root", PasswordHash: "h"}))

	err := users.Create(ctx, &models.User{Username: "root", PasswordHash: "h2"})
	var uniq *domain.UniquenessError
	require.ErrorAs(t, err, &uniq)
	assert.Equal(t, "username", uniq.Field)

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUserRepository_BlogList(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	user := &models.User{Username: "root"}
	require.NoError(t, users.Create(ctx, user))

	require.NoError(t, users.AppendBlog(ctx, user.ID, "b1"))
	require.NoError(t, users.AppendBlog(ctx, user.ID, "b2"))
	require.NoError(t, users.RemoveBlog(ctx, user.ID, "b1"))

	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b2"}, got.Blogs)

	byName, err := users.GetByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	blogs, users := store.Blogs(), store.Users()

	user := &models.User{Username: "root"}
	require.NoError(t, users.Create(ctx, user))

	boom := errors.New("boom")
	err := store.TransactionManager().ExecTx(ctx, func(ctx context.Context) error {
		blog := &models.Blog{Title: "t", URL: "u", UserID: user.ID}
		if err := blogs.Create(ctx, blog); err != nil {
			return err
		}
		if err := users.AppendBlog(ctx, user.ID, blog.ID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := blogs.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Blogs)
}

func TestTransactionManager_RollbackKeepsOutsideWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	blogs, users := store.Blogs(), store.Users()

	owner := &models.User{Username: "root"}
	require.NoError(t, users.Create(ctx, owner))
	existing := &models.Blog{Title: "Test2", URL: "u", Likes: 6, UserID: owner.ID}
	require.NoError(t, blogs.Create(ctx, existing))

	boom := errors.New("boom")
	var outsider *models.User
	err := store.TransactionManager().ExecTx(ctx, func(txCtx context.Context) error {
		blog := &models.Blog{Title: "t", URL: "u", UserID: owner.ID}
		if err := blogs.Create(txCtx, blog); err != nil {
			return err
		}
		if err := users.AppendBlog(txCtx, owner.ID, blog.ID); err != nil {
			return err
		}

		// writes made with a context outside the transaction
		outsider = &models.User{Username: "mluukkai"}
		if err := users.Create(ctx, outsider); err != nil {
			return err
		}
		if _, err := blogs.UpdateLikes(ctx, existing.ID, 7); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = users.GetByID(ctx, outsider.ID)
	assert.NoError(t, err)

	got, err := blogs.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Likes)

	n, err := blogs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	o, err := users.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, o.Blogs)
}

func TestTransactionManager_RollbackRestoresDeletedBlogInPlace(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	blogs := store.Blogs()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		blog := &models.Blog{Title: title, URL: "u"}
		require.NoError(t, blogs.Create(ctx, blog))
		ids = append(ids, blog.ID)
	}

	boom := errors.New("boom")
	err := store.TransactionManager().ExecTx(ctx, func(txCtx context.Context) error {
		if err := blogs.Delete(txCtx, ids[1]); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := blogs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].Title, list[1].Title, list[2].Title})
}
