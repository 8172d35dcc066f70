package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

func prepare() error {
	goose.SetBaseFS(migrationsFS)
	return goose.SetDialect("mysql")
}

func RunMigrations(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	const operation = "storage.RunMigrations"

	logger.Info("running database migrations")
	if err := prepare(); err != nil {
		return fmt.Errorf("%s: failed to set dialect: %w", operation, err)
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", operation, err)
	}
	logger.Info("database migrations completed")
	return nil
}

func RollbackMigration(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	const operation = "storage.RollbackMigration"

	logger.Info("rolling back last migration")
	if err := prepare(); err != nil {
		return fmt.Errorf("%s: failed to set dialect: %w", operation, err)
	}
	if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("%s: failed to rollback migration: %w", operation, err)
	}
	logger.Info("migration rollback completed")
	return nil
}

func Status(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	const operation = "storage.Status"

	if err := prepare(); err != nil {
		return fmt.Errorf("%s: failed to set dialect: %w", operation, err)
	}
	if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("%s: failed to check migration status: %w", operation, err)
	}
	return nil
}
