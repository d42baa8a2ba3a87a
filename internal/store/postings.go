package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jobposts-engine/internal/domain"
)

// SavePostings stores every row of t as a JSON object keyed by column.
// Missing cells are null; bools and numbers keep their JSON types.
func SavePostings(ctx context.Context, db *sql.DB, runID string, t *domain.Table) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO postings (run_id, row_num, data)
VALUES (?, ?, ?)
ON CONFLICT(run_id, row_num) DO UPDATE SET data = excluded.data;`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		obj := make(map[string]any, len(t.Columns))
		for c, name := range t.Columns {
			obj[name] = jsonValue(row[c])
		}
		b, err := json.Marshal(obj)
		if err != nil {
			return 0, fmt.Errorf("posting %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, runID, i, string(b)); err != nil {
			return 0, fmt.Errorf("insert posting %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return t.Len(), nil
}

// Posting returns one stored row.
func Posting(ctx context.Context, db *sql.DB, runID string, row int) (map[string]any, error) {
	var data string
	err := db.QueryRowContext(ctx, `SELECT data FROM postings WHERE run_id = ? AND row_num = ?;`, runID, row).Scan(&data)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func jsonValue(v domain.Value) any {
	switch v.Kind() {
	case domain.KindBool:
		b, _ := v.AsBool()
		return b
	case domain.KindNumber:
		if f, ok := v.AsNumber(); ok {
			return f
		}
		return nil
	case domain.KindText:
		s, _ := v.AsText()
		return s
	default:
		return nil
	}
}
