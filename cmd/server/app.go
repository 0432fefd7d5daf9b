package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dayoun/memopad/internal/config"
	"github.com/dayoun/memopad/internal/platform/postgres"
	"github.com/dayoun/memopad/internal/service"
	"github.com/dayoun/memopad/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	memoStore   store.MemoStore
	memoService service.MemoService
}

// newApplication connects the database, applies migrations, and wires the
// stores and services together.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(context.Background(), db, logger); err != nil {
		closeDB(db, logger)
		return nil, err
	}

	memoStore := postgres.NewPostgresMemoStore(db, logger)

	memoService, err := service.NewMemoService(memoStore, logger)
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("failed to create memo service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		memoStore:   memoStore,
		memoService: memoService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDB(app.db, app.logger)
}

func closeDB(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}
