package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy: column lists trimmed and
// de-duplicated. Dictionary entries are left untouched because repeated
// source phrases are meaningful (the last one wins).
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			if seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Input.NAValues = trimList(out.Input.NAValues)
	out.Columns.StripPrefixes = trimList(out.Columns.StripPrefixes)
	out.Columns.Drop = trimList(out.Columns.Drop)
	out.Translate.Columns = trimList(out.Translate.Columns)
	out.Translate.MarkupColumns = trimList(out.Translate.MarkupColumns)
	out.Coerce.Bools = trimList(out.Coerce.Bools)
	out.Coerce.Numerics = trimList(out.Coerce.Numerics)
	out.Analyze.ITCategories = trimList(out.Analyze.ITCategories)

	// ---- Validation rules ----

	if d := out.Input.Delimiter; d != "" && len([]rune(d)) != 1 {
		res.addErr("input.delimiter must be a single character, got %q", d)
	}

	for i, p := range out.Columns.RewritePrefixes {
		if p.From == "" {
			res.addErr("columns.rewrite_prefixes[%d].from is required", i)
		}
	}

	seenKey := map[string]int{}
	for i, p := range out.Translate.Dictionary {
		if p.From == "" {
			res.addErr("translate.dictionary[%d].from cannot be empty", i)
			continue
		}
		if j, ok := seenKey[p.From]; ok {
			res.addWarn("translate.dictionary[%d] repeats %q from entry %d; the later value wins", i, p.From, j)
		}
		seenKey[p.From] = i
	}
	if len(out.Translate.Columns) == 0 && len(out.Translate.Dictionary) > 0 {
		res.addWarn("translate.columns is empty; the dictionary will not be applied")
	}

	numeric := map[string]bool{}
	for _, c := range out.Coerce.Numerics {
		numeric[c] = true
	}
	for _, b := range out.Coerce.Bools {
		if numeric[b] {
			res.addErr("column %q is listed as both bool and numeric", b)
		}
	}

	for i, f := range out.Coerce.Fills {
		if strings.TrimSpace(f.Column) == "" {
			res.addErr("coerce.fills[%d].column is required", i)
		}
		switch {
		case f.Text == nil && f.Number == nil:
			res.addErr("coerce.fills[%d] needs text or number", i)
		case f.Text != nil && f.Number != nil:
			res.addErr("coerce.fills[%d] sets both text and number", i)
		case f.Text != nil && numeric[f.Column]:
			res.addWarn("coerce.fills[%d] fills numeric column %q with text; it will be coerced to missing", i, f.Column)
		}
	}

	if len(out.Classify.Manager)+len(out.Classify.Senior)+len(out.Classify.Junior) == 0 {
		res.addWarn("classify keyword sets are empty; every title will be mid-level")
	}
	for i, r := range out.Classify.ITRoles {
		if r.Tag == "" {
			res.addErr("classify.it_roles[%d].tag is required", i)
		}
		if len(r.Any) == 0 {
			res.addErr("classify.it_roles[%d].any must have at least 1 term", i)
		}
	}

	if q := out.Analyze.SalaryOutlierQuantile; q <= 0 || q > 1 {
		res.addErr("analyze.salary_outlier_quantile must be in (0, 1]")
	}
	if out.Analyze.ExperienceCap < 0 {
		res.addErr("analyze.experience_cap must be >= 0")
	}
	if out.Analyze.TopN <= 0 {
		res.addErr("analyze.top_n must be > 0")
	} else if out.Analyze.TopN > 200 {
		res.addWarn("analyze.top_n is very high (%d)", out.Analyze.TopN)
	}
	if out.Analyze.MinRoleCount < 0 {
		res.addErr("analyze.min_role_count must be >= 0")
	}
	if len(out.Analyze.ITCategories) == 0 {
		res.addWarn("analyze.it_categories is empty; it_role_salary will have no rows")
	}

	return out, res
}
