package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloglist/internal/auth"
	"bloglist/internal/config"
	"bloglist/internal/domain/repositories"
	"bloglist/internal/repository/memory"
	"bloglist/internal/repository/postgres"
	"bloglist/internal/router"
	"bloglist/internal/service"
	serviceAuth "bloglist/internal/service/auth"

	"github.com/joho/godotenv"
)

// stores bundles the repositories of the selected backend
type stores struct {
	users     repositories.UserRepository
	blogs     repositories.BlogRepository
	txManager repositories.TransactionManager
	close     func()
}

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Setup structured logging
	logger, closeLog, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"store", cfg.Store,
		"require_owner_for_likes", cfg.RequireOwnerForLikes,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.close()

	// Token codec holds the only copy of the signing secret
	codec, err := auth.NewHMACCodec(cfg.Secret, cfg.TokenTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create token codec: %v", err)
	}

	// Create services
	authorizer := serviceAuth.NewOwnerAuthorizer()
	resolver := serviceAuth.NewIdentityResolver(codec, st.users, logger)
	blogService := service.NewBlogService(
		st.blogs,
		st.users,
		st.txManager,
		authorizer,
		service.BlogServiceOptions{RequireOwnerForLikes: cfg.RequireOwnerForLikes},
		logger,
	)
	userService := service.NewUserService(st.users, cfg.BcryptCost, logger)
	loginService := service.NewLoginService(st.users, codec, logger)

	if cfg.RequireOwnerForLikes {
		logger.Warn("like updates require the blog owner's token")
	}

	logger.Info("services initialized")

	handler := router.New(router.Deps{
		Blogs:                blogService,
		Users:                userService,
		Login:                loginService,
		Resolver:             resolver,
		Logger:               logger,
		CORSOrigins:          cfg.CORSOrigins,
		RequireOwnerForLikes: cfg.RequireOwnerForLikes,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("server stopped")
}

// openStores connects the configured backend. Postgres gets its schema
// migrated before the first request.
func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	if cfg.Store == config.StoreMemory {
		store := memory.NewStore()
		logger.Warn("using in-memory store, data is lost on exit")
		return &stores{
			users:     store.Users(),
			blogs:     store.Blogs(),
			txManager: store.TransactionManager(),
			close:     func() {},
		}, nil
	}

	// Create pgx connection pool
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("database connected",
		"max_conns", pool.Config().MaxConns,
		"min_conns", pool.Config().MinConns,
	)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	return &stores{
		users:     postgres.NewUserRepository(repoConfig),
		blogs:     postgres.NewBlogRepository(repoConfig),
		txManager: postgres.NewTransactionManager(repoConfig),
		close:     pool.Close,
	}, nil
}
