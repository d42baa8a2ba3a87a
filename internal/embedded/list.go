// Package embedded decodes the stringified lists of records found in
// some export columns, e.g.
//
//	[{'TitleFa': 'Python', 'Level': 'Expert'}, {'TitleFa': 'SQL'}]
package embedded

import (
	"encoding/json"
	"errors"
	"strings"

	"jobposts-engine/internal/domain"
)

// ErrNotList is returned by Diagnose when a cell decodes to something
// other than a JSON array.
var ErrNotList = errors.New("embedded: not a list")

type Record map[string]any

type Parser struct {
	Normalize QuoteNormalizer
}

var Default = Parser{Normalize: NaiveQuotes}

func (p Parser) decode(raw string) ([]any, error) {
	norm := p.Normalize
	if norm == nil {
		norm = NaiveQuotes
	}

	var v any
	if err := json.Unmarshal([]byte(norm(raw)), &v); err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, ErrNotList
	}
	return list, nil
}

// Diagnose reports why a cell would yield no records; nil for a valid list.
func (p Parser) Diagnose(raw string) error {
	_, err := p.decode(raw)
	return err
}

// Records returns the object elements of the list. Any decode failure
// yields an empty result.
func (p Parser) Records(raw string) []Record {
	list, err := p.decode(raw)
	if err != nil {
		return nil
	}
	out := make([]Record, 0, len(list))
	for _, el := range list {
		if m, ok := el.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// Strings collects attr from every record, trimmed. Records where attr
// is absent, not a string or blank are skipped.
func (p Parser) Strings(raw, attr string) []string {
	var out []string
	for _, r := range p.Records(raw) {
		if s, ok := r.text(attr); ok {
			out = append(out, s)
		}
	}
	return out
}

// First returns attr of the first list element only, or Unspecified.
func (p Parser) First(raw, attr string) string {
	list, err := p.decode(raw)
	if err != nil || len(list) == 0 {
		return domain.Unspecified
	}
	m, ok := list[0].(map[string]any)
	if !ok {
		return domain.Unspecified
	}
	if s, ok := Record(m).text(attr); ok {
		return s
	}
	return domain.Unspecified
}

func (r Record) text(attr string) (string, bool) {
	s, ok := r[attr].(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
