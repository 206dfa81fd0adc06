package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/varkas/amptop/internal/battery"
	"codeberg.org/varkas/amptop/internal/errors"
	"codeberg.org/varkas/amptop/internal/logger"
)

type sqliteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

// NewRepository opens (or creates) the snapshot log at cfg.DBPath and
// ensures the schema exists.
func NewRepository(cfg Config) (Repository, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", cfg.DBPath).Msg("Initializing snapshot log")

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteRepository{
		db: db,
	}, nil
}

func (r *sqliteRepository) Append(ctx context.Context, snapshot *Snapshot) error {
	errFactory := errors.New()

	if snapshot == nil {
		return errFactory.New(errors.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO battery_logs (percent, timestamp, status)
        VALUES (?, ?, ?)
    `,
		snapshot.Percent,
		snapshot.Timestamp,
		string(snapshot.Status),
	)
	if err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Query(ctx context.Context, limit int) ([]Snapshot, error) {
	errFactory := errors.New()

	query := "SELECT percent, timestamp, status FROM battery_logs ORDER BY timestamp DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageQuery, err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		var status string
		if err := rows.Scan(&s.Percent, &s.Timestamp, &status); err != nil {
			return nil, errFactory.Wrap(ErrStorageQuery, err)
		}
		s.Status = battery.Status(status)
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(ErrStorageQuery, err)
	}

	return snapshots, nil
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errors.New().Wrap(ErrStorageClose, err)
	}

	return nil
}
