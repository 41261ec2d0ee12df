package service

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"bloglist/internal/domain"
	"bloglist/internal/domain/models"
	"bloglist/internal/domain/services"
	"bloglist/internal/repository/memory"
	authsvc "bloglist/internal/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int { return &v }

type blogFixture struct {
	store   *memory.Store
	svc     services.BlogService
	owner   *models.User
	another *models.User
}

func setupBlogService(t *testing.T, opts BlogServiceOptions) *blogFixture {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	owner := &models.User{Username: "root", Name: "Superuser", PasswordHash: "x"}
	another := &models.User{Username: "mluukkai", Name: "Matti", PasswordHash: "y"}
	require.NoError(t, store.Users().Create(ctx, owner))
	require.NoError(t, store.Users().Create(ctx, another))

	svc := NewBlogService(
		store.Blogs(),
		store.Users(),
		store.TransactionManager(),
		authsvc.NewOwnerAuthorizer(),
		opts,
		discardLogger(),
	)
	return &blogFixture{store: store, svc: svc, owner: owner, another: another}
}

func (f *blogFixture) create(t *testing.T, title string, likes int) *models.Blog {
	t.Helper()
	blog, err := f.svc.CreateBlog(context.Background(), f.owner, &services.CreateBlogRequest{
		Title:  title,
		Author: "Zane",
		URL:    "www.zzz.com",
		Likes:  intPtr(likes),
	})
	require.NoError(t, err)
	return blog
}

func TestCreateBlog_LinksOwner(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})
	ctx := context.Background()

	blog := f.create(t, "Test1", 3)
	assert.Equal(t, f.owner.ID, blog.UserID)
	assert.Equal(t, 3, blog.Likes)

	owner, err := f.store.Users().GetByID(ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{blog.ID}, owner.Blogs)
}

func TestCreateBlog_DefaultsLikesToZero(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})

	blog, err := f.svc.CreateBlog(context.Background(), f.owner, &services.CreateBlogRequest{
		Title: "No likes",
		URL:   "www.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, blog.Likes)
}

func TestCreateBlog_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     services.CreateBlogRequest
		message string
	}{
		{"missing title", services.CreateBlogRequest{URL: "u"}, "title: cannot be blank."},
		{"blank title", services.CreateBlogRequest{Title: "   ", URL: "u"}, "title: cannot be blank."},
		{"missing url", services.CreateBlogRequest{Title: "t"}, "url: cannot be blank."},
		{"negative likes", services.CreateBlogRequest{Title: "t", URL: "u", Likes: intPtr(-1)}, "likes: must be no less than 0."},
		{"likes past column range", services.CreateBlogRequest{Title: "t", URL: "u", Likes: intPtr(math.MaxInt32 + 1)}, "likes: must be no greater than 2147483647."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupBlogService(t, BlogServiceOptions{})
			req := tt.req

			_, err := f.svc.CreateBlog(context.Background(), f.owner, &req)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)

			n, err := f.store.Blogs().Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestCreateBlog_RequiresOwner(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})

	_, err := f.svc.CreateBlog(context.Background(), nil, &services.CreateBlogRequest{Title: "t", URL: "u"})
	var uerr *domain.UnauthorizedError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, domain.MsgTokenMissing, uerr.Message)
}

func TestDeleteBlog_Owner(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})
	ctx := context.Background()
	blog := f.create(t, "Test1", 0)

	require.NoError(t, f.svc.DeleteBlog(ctx, f.owner, blog.ID))

	_, err := f.svc.GetBlog(ctx, blog.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	owner, err := f.store.Users().GetByID(ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, owner.Blogs)

	// a second delete reports the blog as gone
	assert.ErrorIs(t, f.svc.DeleteBlog(ctx, f.owner, blog.ID), domain.ErrNotFound)
}

func TestDeleteBlog_NonOwnerForbidden(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})
	ctx := context.Background()
	blog := f.create(t, "Test1", 0)

	err := f.svc.DeleteBlog(ctx, f.another, blog.ID)
	var ferr *domain.ForbiddenError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, domain.MsgDeleteForbidden, ferr.Message)

	_, err = f.svc.GetBlog(ctx, blog.ID)
	assert.NoError(t, err)
}

func TestDeleteBlog_MalformedID(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})

	err := f.svc.DeleteBlog(context.Background(), f.owner, "5a3d5da59070081a82a3445")
	assert.ErrorIs(t, err, domain.ErrMalformedID)
}

func TestUpdateLikes_AnyCaller(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})
	ctx := context.Background()
	blog := f.create(t, "Test2", 6)

	updated, err := f.svc.UpdateLikes(ctx, nil, blog.ID, &services.UpdateLikesRequest{Likes: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Likes)
	assert.Equal(t, blog.Title, updated.Title)

	got, err := f.svc.GetBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Likes)
}

func TestUpdateLikes_Validation(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})
	ctx := context.Background()
	blog := f.create(t, "Test2", 6)

	_, err := f.svc.UpdateLikes(ctx, nil, blog.ID, &services.UpdateLikesRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.UpdateLikes(ctx, nil, blog.ID, &services.UpdateLikesRequest{Likes: intPtr(-3)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.UpdateLikes(ctx, nil, blog.ID, &services.UpdateLikesRequest{Likes: intPtr(3000000000)})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "likes: must be no greater than 2147483647.", verr.Message)

	got, err := f.svc.GetBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Likes)
}

func TestUpdateLikes_UnknownBlog(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})

	_, err := f.svc.UpdateLikes(context.Background(), nil, "2f0d5a8e-0a4a-4b55-9a43-1c9d7f3b1e10", &services.UpdateLikesRequest{Likes: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateLikes_OwnerGuard(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{RequireOwnerForLikes: true})
	ctx := context.Background()
	blog := f.create(t, "Test2", 6)
	req := &services.UpdateLikesRequest{Likes: intPtr(10)}

	_, err := f.svc.UpdateLikes(ctx, nil, blog.ID, req)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.UpdateLikes(ctx, f.another, blog.ID, req)
	var ferr *domain.ForbiddenError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, domain.MsgUpdateForbidden, ferr.Message)

	updated, err := f.svc.UpdateLikes(ctx, f.owner, blog.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Likes)
}

func TestStats(t *testing.T) {
	f := setupBlogService(t, BlogServiceOptions{})
	ctx := context.Background()

	empty, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalLikes)
	assert.Nil(t, empty.Favorite)

	f.create(t, "Test1", 0)
	first := f.create(t, "Test2", 6)
	f.create(t, "Test3", 6)

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalLikes)
	require.NotNil(t, stats.Favorite)
	assert.Equal(t, first.ID, stats.Favorite.ID)
}
