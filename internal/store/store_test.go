package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobposts-engine/internal/analyze"
	"jobposts-engine/internal/domain"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "engine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTest(t)
	require.NoError(t, Migrate(db.Pool))

	var v int
	require.NoError(t, db.Pool.QueryRow(`PRAGMA user_version;`).Scan(&v))
	assert.Equal(t, schemaVersion, v)
	assert.True(t, columnExists(db.Pool, "runs", "summary"))
	assert.False(t, columnExists(db.Pool, "runs", "nope"))
}

func TestRuns_SaveAndList(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	older := Run{ID: NewRunID(), Input: "raw.csv", Output: "clean.csv", StartedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), RowsIn: 3, RowsOut: 3}
	newer := Run{ID: NewRunID(), Input: "raw.csv", Output: "clean.csv", StartedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), RowsIn: 5, RowsOut: 5}
	require.NoError(t, SaveRun(ctx, db.Pool, older, map[string]int{"filled": 1}))
	require.NoError(t, SaveRun(ctx, db.Pool, newer, nil))

	// saving again updates in place
	older.RowsOut = 2
	require.NoError(t, SaveRun(ctx, db.Pool, older, map[string]int{"filled": 2}))

	runs, err := ListRuns(ctx, db.Pool, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)
	assert.Equal(t, 2, runs[1].RowsOut)
	assert.JSONEq(t, `{"filled": 2}`, string(runs[1].Summary))
	assert.True(t, older.StartedAt.Equal(runs[1].StartedAt))

	assert.Error(t, SaveRun(ctx, db.Pool, Run{}, nil))
}

func TestSavePostings(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	tbl := domain.NewTable([]string{"RawTitle", "MinSalary", "IsRemote"})
	tbl.AppendRow([]domain.Value{domain.Text("بک-اند"), domain.Missing(), domain.Bool(true)})
	tbl.AppendRow([]domain.Value{domain.Text("QA"), domain.Number(12.5), domain.Bool(false)})

	n, err := SavePostings(ctx, db.Pool, "run-1", tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	first, err := Posting(ctx, db.Pool, "run-1", 0)
	require.NoError(t, err)
	assert.Equal(t, "بک-اند", first["RawTitle"])
	assert.Nil(t, first["MinSalary"])
	assert.Equal(t, true, first["IsRemote"])

	second, err := Posting(ctx, db.Pool, "run-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 12.5, second["MinSalary"])

	// re-saving the same run replaces rows
	tbl.Set(1, "MinSalary", domain.Number(20))
	_, err = SavePostings(ctx, db.Pool, "run-1", tbl)
	require.NoError(t, err)
	second, err = Posting(ctx, db.Pool, "run-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, second["MinSalary"])

	var count int
	require.NoError(t, db.Pool.QueryRow(`SELECT COUNT(*) FROM postings;`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestSaveReport(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	mean := 25.0
	rep := analyze.Report{
		RunID: "report-1",
		Results: []analyze.Result{
			{Name: "seniority_salary", Rows: 2, Buckets: []analyze.Bucket{
				{Label: "مقدماتی / کارآموز", Count: 1, Mean: &mean},
				{Label: "ارشد", Count: 1, Mean: &mean},
			}},
			{Name: "company_size", Error: "column not in cleaned file: Company_SizeFa"},
		},
	}
	require.NoError(t, SaveReport(ctx, db.Pool, "run-1", rep))

	got, err := Aggregates(ctx, db.Pool, "run-1", "seniority_salary")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "مقدماتی / کارآموز", got[0].Label)
	assert.Equal(t, "ارشد", got[1].Label)
	require.NotNil(t, got[0].Mean)
	assert.Equal(t, 25.0, *got[0].Mean)

	msg, err := AnalysisError(ctx, db.Pool, "run-1", "company_size")
	require.NoError(t, err)
	assert.Contains(t, msg, "Company_SizeFa")

	// a second report for the same run replaces buckets
	rep.Results[0].Buckets = rep.Results[0].Buckets[:1]
	rep.Results[0].Buckets[0].Mean = nil
	require.NoError(t, SaveReport(ctx, db.Pool, "run-1", rep))
	got, err = Aggregates(ctx, db.Pool, "run-1", "seniority_salary")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Mean)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "mean")
}
