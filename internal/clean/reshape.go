package clean

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"jobposts-engine/internal/config"
	"jobposts-engine/internal/domain"
)

// Reshaper brings raw headers onto the canonical schema.
type Reshaper struct {
	StripPrefixes   []string
	RewritePrefixes []config.Pair
	Drop            []string
}

type ReshapeReport struct {
	// Renamed maps raw header -> canonical header, for headers that changed.
	Renamed map[string]string
	Dropped []string
}

func (r Reshaper) Apply(t *domain.Table) ReshapeReport {
	rep := ReshapeReport{Renamed: map[string]string{}}

	for _, raw := range t.Columns {
		if name := r.canonical(raw); name != raw {
			rep.Renamed[raw] = name
		}
	}
	t.Rename(rep.Renamed)

	rep.Dropped = t.Drop(r.Drop...)
	return rep
}

func (r Reshaper) canonical(raw string) string {
	name := norm.NFC.String(strings.TrimSpace(raw))

	for _, p := range r.StripPrefixes {
		if p != "" && strings.HasPrefix(name, p) {
			return strings.TrimPrefix(name, p)
		}
	}
	for _, p := range r.RewritePrefixes {
		if p.From != "" && strings.HasPrefix(name, p.From) {
			return p.To + strings.TrimPrefix(name, p.From)
		}
	}
	return name
}
