package snapshots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"daybook/internal/common"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, name string, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, payload, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`, name, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save snapshot[%s]: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context, name string) (*Snapshot, error) {
	var (
		payload []byte
		savedAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT payload, saved_at FROM snapshots WHERE name = ?`, name).Scan(&payload, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot[%s]: %w", name, err)
	}

	ts, err := time.Parse(time.RFC3339, savedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot timestamp: %w", err)
	}
	return &Snapshot{Name: name, Payload: payload, SavedAt: ts}, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}
