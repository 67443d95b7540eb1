// Package migrations holds the Postgres schema of the match store and the
// section quiz documents.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

//go:embed *.sql
var sqlMigrations embed.FS

var Migrations = migrate.NewMigrations()

func init() {
	if err := Migrations.Discover(sqlMigrations); err != nil {
		panic(err)
	}
}

// Up applies all pending migrations to the database at dsn.
func Up(ctx context.Context, dsn string) error {
	return withMigrator(ctx, dsn, func(m *migrate.Migrator) error {
		group, err := m.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		if group.IsZero() {
			slog.InfoContext(ctx, "migrations: database is up to date")
			return nil
		}
		slog.InfoContext(ctx, "migrations: applied", "group", group.String())
		return nil
	})
}

// Down rolls back the last applied migration group.
func Down(ctx context.Context, dsn string) error {
	return withMigrator(ctx, dsn, func(m *migrate.Migrator) error {
		group, err := m.Rollback(ctx)
		if err != nil {
			return fmt.Errorf("rollback: %w", err)
		}
		if group.IsZero() {
			slog.InfoContext(ctx, "migrations: nothing to roll back")
			return nil
		}
		slog.InfoContext(ctx, "migrations: rolled back", "group", group.String())
		return nil
	})
}

func withMigrator(ctx context.Context, dsn string, fn func(m *migrate.Migrator) error) error {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	m := migrate.NewMigrator(db, Migrations)
	if err := m.Init(ctx); err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	return fn(m)
}
