// Package client bootstraps the local sqlite database that backs the
// session store and the offline snapshot cache.
package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"daybook/internal/client/migrations"
	"daybook/internal/repositories/kv"
	"daybook/internal/repositories/snapshots"

	_ "modernc.org/sqlite"
)

// Repositories bundles the local stores wired to one database handle.
type Repositories struct {
	KV        kv.Repository
	Snapshots snapshots.Repository
	DB        *sql.DB
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the sqlite database at dsn, migrates it, and wires the
// repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		KV:        kv.NewSQLiteRepository(db),
		Snapshots: snapshots.NewSQLiteRepository(db),
		DB:        db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
