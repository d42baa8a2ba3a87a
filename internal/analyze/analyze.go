// Package analyze computes the summary tables behind the job-market
// charts. Every analysis reads the cleaned file on its own.
package analyze

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"jobposts-engine/internal/dataset"
	"jobposts-engine/internal/domain"
)

var ErrMissingColumn = errors.New("column not in cleaned file")

type Bucket struct {
	Label string   `json:"label"`
	Count int      `json:"count"`
	Mean  *float64 `json:"mean,omitempty"`
}

type Result struct {
	Name string `json:"name"`
	// Rows is the number of postings that survived the analysis filters.
	Rows    int      `json:"rows"`
	Buckets []Bucket `json:"buckets"`
	Error   string   `json:"error,omitempty"`
}

type Analysis struct {
	Name string
	Run  func(t *domain.Table) (Result, error)
}

type Report struct {
	RunID       string    `json:"run_id"`
	Input       string    `json:"input"`
	GeneratedAt time.Time `json:"generated_at"`
	Results     []Result  `json:"results"`
}

// Failed lists the analyses that returned an error.
func (r Report) Failed() []string {
	var out []string
	for _, res := range r.Results {
		if res.Error != "" {
			out = append(out, res.Name)
		}
	}
	return out
}

// RunAll runs every analysis concurrently against cleanedPath. A failing
// analysis is logged and reported; the others still run.
func RunAll(cleanedPath string, opt dataset.Options, analyses []Analysis, log zerolog.Logger) Report {
	rep := Report{
		RunID:       uuid.NewString(),
		Input:       cleanedPath,
		GeneratedAt: time.Now().UTC(),
		Results:     make([]Result, len(analyses)),
	}

	var g errgroup.Group
	for i, a := range analyses {
		g.Go(func() error {
			res, err := runOne(cleanedPath, opt, a)
			if err != nil {
				log.Error().Err(err).Str("analysis", a.Name).Msg("analysis failed")
				res = Result{Name: a.Name, Error: err.Error()}
			} else {
				log.Debug().
					Str("analysis", a.Name).
					Int("rows", res.Rows).
					Int("buckets", len(res.Buckets)).
					Msg("analysis done")
			}
			rep.Results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return rep
}

func runOne(path string, opt dataset.Options, a Analysis) (Result, error) {
	t, err := dataset.ReadFile(path, opt)
	if err != nil {
		return Result{}, err
	}
	res, err := a.Run(t)
	if err != nil {
		return Result{}, err
	}
	res.Name = a.Name
	return res, nil
}

// WriteReport writes rep as indented JSON, replacing path atomically.
func WriteReport(path string, rep Report) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return os.Rename(tmp, path)
}
