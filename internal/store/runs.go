package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Run struct {
	ID        string          `json:"id"`
	Input     string          `json:"input"`
	Output    string          `json:"output"`
	StartedAt time.Time       `json:"startedAt"`
	RowsIn    int             `json:"rowsIn"`
	RowsOut   int             `json:"rowsOut"`
	Summary   json.RawMessage `json:"summary"`
}

func NewRunID() string { return uuid.NewString() }

// SaveRun inserts or replaces a run. summary is stored as JSON.
func SaveRun(ctx context.Context, db *sql.DB, r Run, summary any) error {
	if r.ID == "" {
		return fmt.Errorf("save run: empty id")
	}
	b, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	_, err = db.ExecContext(ctx, `
INSERT INTO runs (id, input, output, started_at, rows_in, rows_out, summary)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  input = excluded.input,
  output = excluded.output,
  started_at = excluded.started_at,
  rows_in = excluded.rows_in,
  rows_out = excluded.rows_out,
  summary = excluded.summary;`,
		r.ID, r.Input, r.Output, r.StartedAt.UTC().Format(time.RFC3339), r.RowsIn, r.RowsOut, string(b),
	)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first.
func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, input, output, started_at, rows_in, rows_out, summary
FROM runs
ORDER BY started_at DESC, id
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started, summary string
		if err := rows.Scan(&r.ID, &r.Input, &r.Output, &started, &r.RowsIn, &r.RowsOut, &summary); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.Summary = json.RawMessage(summary)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
