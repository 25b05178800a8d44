package db

import (
	"context"
	"database/sql"
	"log/slog"

	"turfbook/internal/pkg/errs"
	"turfbook/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies the embedded goose migrations through a pgx pool.
type Migrator struct {
	db *sql.DB
}

func NewMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errs.Wrap(err, "set goose dialect")
	}

	return &Migrator{db: stdlib.OpenDBFromPool(pool)}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	slog.Info("applying database migrations")
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return errs.Wrap(err, "apply migrations")
	}
	slog.Info("migrations applied")
	return nil
}

func (m *Migrator) Down(ctx context.Context) error {
	if err := goose.DownContext(ctx, m.db, "."); err != nil {
		return errs.Wrap(err, "roll back migration")
	}
	return nil
}

func (m *Migrator) Status(ctx context.Context) error {
	if err := goose.StatusContext(ctx, m.db, "."); err != nil {
		return errs.Wrap(err, "migration status")
	}
	return nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, errs.Wrap(err, "get version")
	}
	return version, nil
}

// Close releases the sql.DB wrapper only; the pool stays owned by the caller.
func (m *Migrator) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
