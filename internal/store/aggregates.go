package store

import (
	"context"
	"database/sql"
	"fmt"

	"jobposts-engine/internal/analyze"
)

// SaveReport replaces the stored results of every analysis in rep.
func SaveReport(ctx context.Context, db *sql.DB, runID string, rep analyze.Report) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, res := range rep.Results {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO analyses (run_id, name, report_id, row_count, error)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(run_id, name) DO UPDATE SET
  report_id = excluded.report_id,
  row_count = excluded.row_count,
  error = excluded.error;`,
			runID, res.Name, rep.RunID, res.Rows, res.Error,
		); err != nil {
			return fmt.Errorf("save analysis %s: %w", res.Name, err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM aggregates WHERE run_id = ? AND analysis = ?;`, runID, res.Name,
		); err != nil {
			return err
		}
		for pos, b := range res.Buckets {
			var mean sql.NullFloat64
			if b.Mean != nil {
				mean = sql.NullFloat64{Float64: *b.Mean, Valid: true}
			}
			if _, err := tx.ExecContext(ctx, `
INSERT INTO aggregates (run_id, analysis, position, label, count, mean)
VALUES (?, ?, ?, ?, ?, ?);`,
				runID, res.Name, pos, b.Label, b.Count, mean,
			); err != nil {
				return fmt.Errorf("save %s/%s: %w", res.Name, b.Label, err)
			}
		}
	}

	return tx.Commit()
}

// Aggregates returns the stored buckets of one analysis in display order.
func Aggregates(ctx context.Context, db *sql.DB, runID, analysis string) ([]analyze.Bucket, error) {
	rows, err := db.QueryContext(ctx, `
SELECT label, count, mean
FROM aggregates
WHERE run_id = ? AND analysis = ?
ORDER BY position;`, runID, analysis)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []analyze.Bucket
	for rows.Next() {
		var b analyze.Bucket
		var mean sql.NullFloat64
		if err := rows.Scan(&b.Label, &b.Count, &mean); err != nil {
			return nil, err
		}
		if mean.Valid {
			m := mean.Float64
			b.Mean = &m
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AnalysisError returns the stored error of an analysis; empty means it
// succeeded.
func AnalysisError(ctx context.Context, db *sql.DB, runID, analysis string) (string, error) {
	var msg string
	err := db.QueryRowContext(ctx,
		`SELECT error FROM analyses WHERE run_id = ? AND name = ?;`, runID, analysis,
	).Scan(&msg)
	return msg, err
}
