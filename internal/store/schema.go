package store

import (
	"database/sql"
	"fmt"
)

const schemaVersion = 2

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= schemaVersion {
		return tx.Commit()
	}

	// ---- Schema v1: runs and postings ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  input TEXT NOT NULL,
  output TEXT NOT NULL,
  started_at TEXT NOT NULL,
  rows_in INTEGER NOT NULL DEFAULT 0,
  rows_out INTEGER NOT NULL DEFAULT 0,
  summary TEXT NOT NULL DEFAULT '{}'
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS postings (
  run_id TEXT NOT NULL,
  row_num INTEGER NOT NULL,
  data TEXT NOT NULL,
  PRIMARY KEY (run_id, row_num)
);
`); err != nil {
		return err
	}

	// ---- Schema v2: analysis results ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS analyses (
  run_id TEXT NOT NULL,
  name TEXT NOT NULL,
  report_id TEXT NOT NULL DEFAULT '',
  row_count INTEGER NOT NULL DEFAULT 0,
  error TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (run_id, name)
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS aggregates (
  run_id TEXT NOT NULL,
  analysis TEXT NOT NULL,
  position INTEGER NOT NULL,
  label TEXT NOT NULL,
  count INTEGER NOT NULL,
  mean REAL,
  PRIMARY KEY (run_id, analysis, label)
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_runs_started_at
ON runs(started_at);
`); err != nil {
		return err
	}

	// v1 databases predate the summary column.
	if !columnExists(tx, "runs", "summary") {
		if _, err := tx.Exec(`ALTER TABLE runs ADD COLUMN summary TEXT NOT NULL DEFAULT '{}';`); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d;`, schemaVersion)); err != nil {
		return err
	}

	return tx.Commit()
}

func columnExists(q interface {
	QueryRow(query string, args ...any) *sql.Row
}, table, col string) bool {
	query := fmt.Sprintf(`
SELECT 1
FROM pragma_table_info('%s')
WHERE name = ?
LIMIT 1;
`, table)

	var one int
	err := q.QueryRow(query, col).Scan(&one)
	return err == nil
}
