// Package clean turns a raw job-postings export into the cleaned table:
// reshape headers, translate text columns, coerce types, write.
package clean

import (
	"errors"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"jobposts-engine/internal/config"
	"jobposts-engine/internal/dataset"
	"jobposts-engine/internal/domain"
	"jobposts-engine/internal/embedded"
)

type Pipeline struct {
	Reshaper   Reshaper
	Translator *Translator
	Coercer    Coercer
	Lists      embedded.Parser
	IO         dataset.Options
	Log        zerolog.Logger
}

type Summary struct {
	RowsIn    int
	RowsOut   int
	Columns   []string
	Reshape   ReshapeReport
	Translate TranslateReport
	Coerce    CoerceReport
	// MalformedLists counts list cells the embedded parser cannot decode.
	MalformedLists map[string]int
	// LongRows counts input rows with more fields than the header; the
	// extra fields are discarded.
	LongRows int
}

// New builds a pipeline from a validated config.
func New(cfg config.Config, log zerolog.Logger) *Pipeline {
	var comma rune
	if cfg.Input.Delimiter != "" {
		comma, _ = utf8.DecodeRuneInString(cfg.Input.Delimiter)
	}
	return &Pipeline{
		Reshaper: Reshaper{
			StripPrefixes:   cfg.Columns.StripPrefixes,
			RewritePrefixes: cfg.Columns.RewritePrefixes,
			Drop:            cfg.Columns.Drop,
		},
		Translator: NewTranslator(
			cfg.Translate.Columns,
			cfg.Translate.MarkupColumns,
			cfg.Translate.Separator,
			NewDictionary(cfg.Translate.Dictionary),
		),
		Coercer: Coercer{
			Fills:    cfg.Coerce.Fills,
			Bools:    cfg.Coerce.Bools,
			Numerics: cfg.Coerce.Numerics,
		},
		Lists: embedded.Default,
		IO:    dataset.Options{Comma: comma, NA: cfg.Input.NAValues},
		Log:   log,
	}
}

// Preprocess cleans rawPath into cleanedPath with the default profile.
func Preprocess(rawPath, cleanedPath string) error {
	_, _, err := New(config.Default(), zerolog.Nop()).Run(rawPath, cleanedPath)
	return err
}

// Run reads rawPath, cleans it and writes cleanedPath. It returns the
// cleaned table with its typed cells. Nothing is written when the input
// cannot be read.
func (p *Pipeline) Run(rawPath, cleanedPath string) (*domain.Table, Summary, error) {
	log := p.Log.With().Str("input", rawPath).Logger()
	log.Info().Msg("preprocessing started")

	var long []int
	in := p.IO
	in.OnLongRow = func(line, _ int) { long = append(long, line) }

	t, err := dataset.ReadFile(rawPath, in)
	if err != nil {
		kind := ErrInputRead
		if errors.Is(err, os.ErrNotExist) {
			kind = ErrInputNotFound
		}
		return nil, Summary{}, &FileError{Op: "read", Path: rawPath, Kind: kind, Err: err}
	}
	log.Info().Int("rows", t.Len()).Int("columns", len(t.Columns)).Msg("raw dataset loaded")
	if len(long) > 0 {
		log.Warn().
			Int("rows", len(long)).
			Int("first_line", long[0]).
			Msg("extra fields beyond the header discarded")
	}

	sum := p.Clean(t)
	sum.LongRows = len(long)

	if err := dataset.WriteFile(cleanedPath, t, p.IO); err != nil {
		return t, sum, &FileError{Op: "write", Path: cleanedPath, Kind: ErrOutputWrite, Err: err}
	}
	log.Info().
		Str("path", cleanedPath).
		Int("rows", sum.RowsOut).
		Msg("preprocessing complete")
	return t, sum, nil
}

// Clean runs the in-memory stages on t.
func (p *Pipeline) Clean(t *domain.Table) Summary {
	sum := Summary{RowsIn: t.Len()}

	sum.Reshape = p.Reshaper.Apply(t)
	p.Log.Info().
		Str("stage", "reshape").
		Int("renamed", len(sum.Reshape.Renamed)).
		Strs("dropped", sum.Reshape.Dropped).
		Msg("columns standardized")

	if p.Translator != nil {
		sum.Translate = p.Translator.Apply(t)
		for _, col := range sortedKeys(sum.Translate.Changed) {
			p.Log.Info().
				Str("stage", "translate").
				Str("column", col).
				Int("rows", sum.Translate.Changed[col]).
				Msg("cells rewritten")
		}
		if len(sum.Translate.Absent) > 0 {
			p.Log.Info().Str("stage", "translate").Strs("absent", sum.Translate.Absent).Msg("columns not in input")
		}
	}

	sum.Coerce = p.Coercer.Apply(t)
	p.Log.Info().
		Str("stage", "coerce").
		Strs("bools", p.Coercer.Bools).
		Strs("numerics", p.Coercer.Numerics).
		Msg("types coerced")
	for _, col := range sortedKeys(sum.Coerce.Filled) {
		p.Log.Info().
			Str("stage", "coerce").
			Str("column", col).
			Int("rows", sum.Coerce.Filled[col]).
			Msg("missing values filled")
	}
	for _, col := range sortedKeys(sum.Coerce.CoercedMissing) {
		p.Log.Warn().
			Str("stage", "coerce").
			Str("column", col).
			Int("rows", sum.Coerce.CoercedMissing[col]).
			Msg("unparsable numbers set to missing")
	}

	sum.MalformedLists = p.diagnoseLists(t)
	for _, col := range sortedKeys(sum.MalformedLists) {
		p.Log.Warn().
			Str("stage", "lists").
			Str("column", col).
			Int("rows", sum.MalformedLists[col]).
			Msg("list cells will read as empty")
	}

	sum.RowsOut = t.Len()
	sum.Columns = append([]string(nil), t.Columns...)
	return sum
}

func (p *Pipeline) diagnoseLists(t *domain.Table) map[string]int {
	out := map[string]int{}
	for _, col := range domain.ListColumns {
		for _, v := range t.Column(col) {
			s, ok := v.AsText()
			if !ok {
				continue
			}
			if p.Lists.Diagnose(s) != nil {
				out[col]++
			}
		}
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
