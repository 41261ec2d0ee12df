package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const migrationsDir = "migrations"

// RunMigrations applies the embedded schema migrations with goose.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	return withGoose(pool, func(db *sql.DB) error {
		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")
		return nil
	})
}

// ResetMigrations rolls every migration back, dropping the schema.
func ResetMigrations(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	return withGoose(pool, func(db *sql.DB) error {
		if err := goose.ResetContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("reset migrations: %w", err)
		}
		logger.Info("database migrations rolled back")
		return nil
	})
}

// ClearData removes every blog and user, keeping the schema.
func ClearData(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "TRUNCATE blogs, users"); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return nil
}

func withGoose(pool *pgxpool.Pool, fn func(db *sql.DB) error) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return fn(db)
}
