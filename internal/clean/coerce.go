package clean

import (
	"jobposts-engine/internal/config"
	"jobposts-engine/internal/domain"
)

// Coercer fills defaults and then enforces bool and numeric column types.
// Unparsable numbers become Missing; nothing is dropped.
type Coercer struct {
	Fills    []config.Fill
	Bools    []string
	Numerics []string
}

type CoerceReport struct {
	Filled map[string]int
	// CoercedMissing counts non-empty cells that did not parse as numbers.
	CoercedMissing map[string]int
}

func (c Coercer) Apply(t *domain.Table) CoerceReport {
	rep := CoerceReport{Filled: map[string]int{}, CoercedMissing: map[string]int{}}

	for _, f := range c.Fills {
		fill, ok := fillValue(f)
		if !ok || !t.Has(f.Column) {
			continue
		}
		for row, v := range t.Column(f.Column) {
			if v.IsMissing() {
				t.Set(row, f.Column, fill)
				rep.Filled[f.Column]++
			}
		}
	}

	for _, col := range c.Bools {
		for row, v := range t.Column(col) {
			t.Set(row, col, domain.Bool(v.Truthy()))
		}
	}

	for _, col := range c.Numerics {
		for row, v := range t.Column(col) {
			n := toNumber(v)
			if n.IsMissing() && !v.IsMissing() {
				rep.CoercedMissing[col]++
			}
			t.Set(row, col, n)
		}
	}
	return rep
}

func fillValue(f config.Fill) (domain.Value, bool) {
	switch {
	case f.Text != nil:
		return domain.Text(*f.Text), true
	case f.Number != nil:
		return domain.Number(*f.Number), true
	default:
		return domain.Missing(), false
	}
}

func toNumber(v domain.Value) domain.Value {
	if b, ok := v.AsBool(); ok {
		if b {
			return domain.Number(1)
		}
		return domain.Number(0)
	}
	if f, ok := v.Float(); ok {
		return domain.Number(f)
	}
	return domain.Missing()
}
