package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"jobposts-engine/internal/analyze"
	"jobposts-engine/internal/clean"
	"jobposts-engine/internal/config"
	"jobposts-engine/internal/domain"
	"jobposts-engine/internal/store"
)

const (
	defaultRaw     = "JobVision_Jobposts_Dataset.csv"
	defaultCleaned = "JobVision_Cleaned.csv"
)

type Options struct {
	Config  string   `long:"config" env:"JOBPOSTS_CONFIG" description:"Config file (default: <data-dir>/config.yml, created on first run)"`
	DataDir string   `long:"data-dir" env:"JOBPOSTS_DATA_DIR" default:"." description:"Directory holding config.yml and dictionary.yml"`
	DB      string   `long:"db" env:"JOBPOSTS_DB" description:"Mirror the run, postings and analysis results into this SQLite file"`
	Report  string   `long:"report" env:"JOBPOSTS_REPORT" description:"Write analysis results as JSON to this file"`
	Analyze []string `long:"analyze" env:"JOBPOSTS_ANALYZE" env-delim:"," description:"Analyses to run after cleaning; 'all' runs every one"`
	Debug   bool     `long:"debug" env:"JOBPOSTS_DEBUG" description:"Log every stage"`

	Args struct {
		Raw     string `positional-arg-name:"RAW" description:"Raw export (default: JobVision_Jobposts_Dataset.csv)"`
		Cleaned string `positional-arg-name:"CLEANED" description:"Cleaned output (default: JobVision_Cleaned.csv)"`
	} `positional-args:"yes"`
}

func main() {
	opts, ok := parseOptions(os.Args[1:])
	if !ok {
		return
	}
	setupLogging(opts.Debug)

	if err := run(opts); err != nil {
		log.Error().Err(err).Msg("engine failed")
		os.Exit(1)
	}
}

func parseOptions(args []string) (Options, bool) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return opts, false
		}
		os.Exit(2)
	}
	if opts.Args.Raw == "" {
		opts.Args.Raw = defaultRaw
	}
	if opts.Args.Cleaned == "" {
		opts.Args.Cleaned = defaultCleaned
	}
	return opts, true
}

func setupLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

func run(opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	started := time.Now()
	p := clean.New(cfg, log.Logger)
	cleaned, sum, err := p.Run(opts.Args.Raw, opts.Args.Cleaned)
	if err != nil {
		var fe *clean.FileError
		if errors.As(err, &fe) {
			return fmt.Errorf("could not %s %s: %w", fe.Op, fe.Path, err)
		}
		return err
	}

	var rep *analyze.Report
	if len(opts.Analyze) > 0 || opts.Report != "" || opts.DB != "" {
		names := opts.Analyze
		if slices.Contains(names, "all") {
			names = nil
		}
		selected, err := analyze.Select(analyze.Builtins(cfg), names)
		if err != nil {
			return err
		}
		r := analyze.RunAll(opts.Args.Cleaned, p.IO, selected, log.Logger)
		if failed := r.Failed(); len(failed) > 0 {
			log.Warn().Strs("analyses", failed).Msg("some analyses failed")
		}
		rep = &r
	}

	if opts.Report != "" && rep != nil {
		if err := analyze.WriteReport(opts.Report, *rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info().Str("path", opts.Report).Msg("report written")
	}

	if opts.DB != "" {
		if err := mirror(opts, cleaned, started, sum, rep); err != nil {
			return fmt.Errorf("mirror to %s: %w", opts.DB, err)
		}
	}
	return nil
}

func loadConfig(opts Options) (config.Config, error) {
	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		return config.Config{}, err
	}

	path := opts.Config
	if path == "" {
		p, err := config.EnsureUserConfig(opts.DataDir)
		if err != nil {
			return config.Config{}, fmt.Errorf("config bootstrap failed: %w", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := config.OverlayDictionary(&cfg, filepath.Join(opts.DataDir, "dictionary.yml")); err != nil {
		return config.Config{}, fmt.Errorf("dictionary overlay: %w", err)
	}

	norm, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Warn().Str("config", path).Msg(w)
	}
	if !res.OK() {
		return config.Config{}, config.Validate(cfg)
	}
	log.Debug().Str("config", path).Msg("config loaded")
	return norm, nil
}

// mirror stores the run with the in-memory cleaned table, so bools and
// numbers keep their types.
func mirror(opts Options, t *domain.Table, started time.Time, sum clean.Summary, rep *analyze.Report) error {
	db, err := store.Open(opts.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	run := store.Run{
		ID:        store.NewRunID(),
		Input:     opts.Args.Raw,
		Output:    opts.Args.Cleaned,
		StartedAt: started,
		RowsIn:    sum.RowsIn,
		RowsOut:   sum.RowsOut,
	}
	if err := store.SaveRun(ctx, db.Pool, run, sum); err != nil {
		return err
	}

	n, err := store.SavePostings(ctx, db.Pool, run.ID, t)
	if err != nil {
		return err
	}

	if rep != nil {
		if err := store.SaveReport(ctx, db.Pool, run.ID, *rep); err != nil {
			return err
		}
	}
	log.Info().Str("run", run.ID).Int("postings", n).Str("db", opts.DB).Msg("run mirrored")
	return nil
}
