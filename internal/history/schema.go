package history

import (
	"database/sql"

	"codeberg.org/varkas/amptop/internal/errors"
)

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS battery_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    percent REAL NOT NULL,
    timestamp INTEGER NOT NULL,
    status TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_timestamp ON battery_logs(timestamp);
`

// initSchema idempotently creates the append-only log table and its
// timestamp index. Safe to call on every process start.
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(createTablesSQL); err != nil {
		return errors.New().Wrap(ErrStorageInit, err)
	}

	return nil
}
