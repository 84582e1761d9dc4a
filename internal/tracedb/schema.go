package tracedb

import "database/sql"

// Schema DDL for the runs table.
const createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    op TEXT NOT NULL,
    detail TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

// ensureSchema creates the runs table if it does not exist.
func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(createRuns)
	return err
}
