package history

import (
	"context"

	"codeberg.org/varkas/amptop/internal/battery"
)

// Snapshot is one persisted telemetry reading. Rows are append-only: once
// written they are never updated or deleted.
type Snapshot struct {
	Percent   float64
	Timestamp int64
	Status    battery.Status
}

// Repository is the durable snapshot log. Exactly one writer process exists
// at a time (the supervisor enforces that); readers may query concurrently,
// relying on SQLite's own file locking across processes.
type Repository interface {
	// Append inserts exactly one row, assigning the next surrogate id.
	Append(ctx context.Context, snapshot *Snapshot) error
	// Query returns snapshots ordered by timestamp descending (newest
	// first). limit <= 0 returns the whole table. Callers needing
	// oldest-first order reverse the result themselves.
	Query(ctx context.Context, limit int) ([]Snapshot, error)
	Close() error
}
