package handler

import (
	"log/slog"
	"net/http"

	"bloglist/internal/domain/services"
	"bloglist/internal/httputil"
)

// BlogHandler handles blog HTTP requests
type BlogHandler struct {
	blogService services.BlogService
	logger      *slog.Logger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService services.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		logger:      logger,
	}
}

// ListBlogs returns every blog, oldest first
// GET /api/blogs
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.ListBlogs(r.Context())
	if err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, blogs)
}

// GetBlog retrieves a blog by ID
// GET /api/blogs/{id}
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.blogService.GetBlog(r.Context(), r.PathValue("id"))
	if err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, blog)
}

// CreateBlog creates a blog owned by the authenticated user
// POST /api/blogs
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBlogRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	blog, err := h.blogService.CreateBlog(r.Context(), httputil.GetUser(r), &req)
	if err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, blog)
}

// DeleteBlog deletes a blog owned by the authenticated user
// DELETE /api/blogs/{id}
func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := h.blogService.DeleteBlog(r.Context(), httputil.GetUser(r), r.PathValue("id")); err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateLikes sets a blog's like count
// PUT /api/blogs/{id}
func (h *BlogHandler) UpdateLikes(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateLikesRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	blog, err := h.blogService.UpdateLikes(r.Context(), httputil.GetUser(r), r.PathValue("id"), &req)
	if err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, blog)
}

// Stats returns the like total and the favorite blog
// GET /api/blogs/stats
func (h *BlogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.blogService.Stats(r.Context())
	if err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stats)
}
