package main

import (
	"context"
	"flag"
	"log"

	"bloglist/internal/config"
	"bloglist/internal/domain/models"
	"bloglist/internal/repository/postgres"
	"bloglist/internal/service"
	serviceAuth "bloglist/internal/service/auth"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Roll back all migrations before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only migrate the schema, don't seed data")
	clearData := flag.Bool("clear-data", false, "Delete all users and blogs (keep schema)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Store != config.StorePostgres {
		log.Fatalf("Seeding needs STORE=%s, got %q", config.StorePostgres, cfg.Store)
	}

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	logger, closeLog, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer closeLog()

	fx, err := loadFixtures(fixturesYAML)
	if err != nil {
		log.Fatalf("Invalid fixtures: %v", err)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := postgres.ResetMigrations(ctx, pool, logger); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	log.Println("Ensuring database schema is up to date...")
	if err := postgres.RunMigrations(ctx, pool, logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	log.Println("Clearing existing users and blogs...")
	if err := postgres.ClearData(ctx, pool); err != nil {
		log.Fatalf("Failed to clear data: %v", err)
	}
	if *clearData {
		log.Println("Data cleared successfully")
		return
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	blogRepo := postgres.NewBlogRepository(repoConfig)
	txManager := postgres.NewTransactionManager(repoConfig)

	// Create services
	userService := service.NewUserService(userRepo, cfg.BcryptCost, logger)
	blogService := service.NewBlogService(
		blogRepo,
		userRepo,
		txManager,
		serviceAuth.NewOwnerAuthorizer(),
		service.BlogServiceOptions{},
		logger,
	)

	owners := make(map[string]*models.User, len(fx.Users))
	for _, u := range fx.Users {
		user, err := userService.Register(ctx, u.request())
		if err != nil {
			log.Fatalf("Failed to create user %q: %v", u.Username, err)
		}
		owners[user.Username] = user
		log.Printf("Created user %s (ID: %s)", user.Username, user.ID)
	}

	for i, b := range fx.Blogs {
		blog, err := blogService.CreateBlog(ctx, owners[b.Owner], b.request())
		if err != nil {
			log.Printf("Failed to create blog %q: %v", b.Title, err)
			continue
		}
		log.Printf("Created blog %d/%d: %s (ID: %s, owner: %s)", i+1, len(fx.Blogs), blog.Title, blog.ID, b.Owner)
	}

	log.Println("Seeding complete!")
}
