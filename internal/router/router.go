// Package router assembles the HTTP surface: routes, identity middleware,
// recovery, request logging and CORS.
package router

import (
	"log/slog"
	"net/http"
	"strings"

	"bloglist/internal/domain/services"
	"bloglist/internal/handler"
	"bloglist/internal/middleware"

	"github.com/rs/cors"
)

// Deps are the services the routes are served by
type Deps struct {
	Blogs    services.BlogService
	Users    services.UserService
	Login    services.LoginService
	Resolver services.IdentityResolver
	Logger   *slog.Logger

	// CORSOrigins is a comma-separated allow list
	CORSOrigins string
	// RequireOwnerForLikes puts PUT /api/blogs/{id} behind identity resolution
	RequireOwnerForLikes bool
}

// New builds the application handler
func New(deps Deps) http.Handler {
	blogHandler := handler.NewBlogHandler(deps.Blogs, deps.Logger)
	userHandler := handler.NewUserHandler(deps.Users, deps.Login, deps.Logger)

	requireUser := middleware.UserExtractor(deps.Resolver, deps.Logger)
	optionalUser := middleware.OptionalUser(deps.Resolver, deps.Logger)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Blog routes
	mux.HandleFunc("GET /api/blogs", blogHandler.ListBlogs)
	mux.HandleFunc("GET /api/blogs/stats", blogHandler.Stats)
	mux.HandleFunc("GET /api/blogs/{id}", blogHandler.GetBlog)
	mux.Handle("POST /api/blogs", requireUser(http.HandlerFunc(blogHandler.CreateBlog)))
	mux.Handle("DELETE /api/blogs/{id}", requireUser(http.HandlerFunc(blogHandler.DeleteBlog)))
	if deps.RequireOwnerForLikes {
		mux.Handle("PUT /api/blogs/{id}", requireUser(http.HandlerFunc(blogHandler.UpdateLikes)))
	} else {
		mux.Handle("PUT /api/blogs/{id}", optionalUser(http.HandlerFunc(blogHandler.UpdateLikes)))
	}

	// User routes
	mux.HandleFunc("GET /api/users", userHandler.ListUsers)
	mux.HandleFunc("POST /api/users", userHandler.Register)
	mux.HandleFunc("POST /api/login", userHandler.Login)

	// Everything else
	mux.HandleFunc("/", handler.UnknownEndpoint)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → RequestLogger → TokenExtractor → Routes
	h = middleware.TokenExtractor()(h)
	h = middleware.RequestLogger(deps.Logger)(h)
	h = middleware.Recovery(deps.Logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: splitOrigins(deps.CORSOrigins),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	})
	return corsHandler.Handler(h)
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
