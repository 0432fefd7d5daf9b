package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dayoun/memopad/internal/migrations"
	"github.com/pressly/goose/v3"
)

// runMigrations applies the embedded goose migrations. It runs at startup
// so a fresh database is usable without any external tooling.
func runMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied")
	return nil
}
