// Package snapshots caches the last successfully fetched list payloads so
// read-only commands can fall back to stale data when the server is
// unreachable.
package snapshots

import (
	"context"
	"time"
)

// Snapshot is one cached payload with the time it was taken.
type Snapshot struct {
	Name    string
	Payload []byte
	SavedAt time.Time
}

type Repository interface {
	// Save stores or replaces the named snapshot.
	Save(ctx context.Context, name string, payload []byte) error
	// Load returns the named snapshot, or common.ErrorNotFound when absent.
	Load(ctx context.Context, name string) (*Snapshot, error)
	// Clear removes all snapshots (e.g., on logout).
	Clear(ctx context.Context) error
}
