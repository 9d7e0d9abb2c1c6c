package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/rehistro/internal/platform/db/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded SQL migrations to the database.
func RunMigrations(ctx context.Context, conn *sql.DB) error {
	slog.Info("Running database migrations...")

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	slog.Info("Database migrations applied.")
	return nil
}
