package handler

import (
	"log/slog"
	"net/http"

	"bloglist/internal/domain/services"
	"bloglist/internal/httputil"
)

// UserHandler handles user and login HTTP requests
type UserHandler struct {
	userService  services.UserService
	loginService services.LoginService
	logger       *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, loginService services.LoginService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService:  userService,
		loginService: loginService,
		logger:       logger,
	}
}

// Register creates a user
// POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, user)
}

// ListUsers returns every user with their blog ids
// GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, users)
}

// Login exchanges credentials for a token
// POST /api/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	result, err := h.loginService.Login(r.Context(), &req)
	if err != nil {
		httputil.RespondFailure(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
