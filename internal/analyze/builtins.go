package analyze

import (
	"fmt"
	"slices"
	"strings"

	"jobposts-engine/internal/classify"
	"jobposts-engine/internal/config"
	"jobposts-engine/internal/domain"
	"jobposts-engine/internal/embedded"
)

// Builtins returns the standard analyses, configured from cfg.
func Builtins(cfg config.Config) []Analysis {
	seniority := classify.Seniority(cfg.Classify.Manager, cfg.Classify.Senior, cfg.Classify.Junior)

	sets := make([]classify.KeywordSet, 0, len(cfg.Classify.ITRoles))
	for _, r := range cfg.Classify.ITRoles {
		sets = append(sets, classify.KeywordSet{Label: r.Tag, Any: r.Any})
	}
	itRole := classify.ITRole(sets)

	q := cfg.Analyze.SalaryOutlierQuantile
	topN := cfg.Analyze.TopN

	return []Analysis{
		{Name: "company_size", Run: CompanySize},
		{Name: "seniority_salary", Run: SenioritySalary(seniority, q)},
		{Name: "experience_bands", Run: ExperienceBands(cfg.Analyze.ExperienceCap)},
		{Name: "degree_levels", Run: DegreeLevels(topN)},
		{Name: "top_skills", Run: ListCounts(domain.ColSoftwareSkills, embedded.SkillTitles, topN)},
		{Name: "academic_fields", Run: ListCounts(domain.ColAcademicFields, embedded.AcademicFieldTypes, topN)},
		{Name: "language_skills", Run: ListCounts(domain.ColLanguageSkills, embedded.LanguageTitles, topN)},
		{Name: "company_age", Run: CompanyAge},
		{Name: "it_role_salary", Run: ITRoleSalary(itRole, cfg.Analyze.ITCategories, q, cfg.Analyze.MinRoleCount)},
		{Name: "age_bands", Run: AgeBands},
		{Name: "salary_bands", Run: SalaryBands(q)},
	}
}

// Select keeps the named analyses, in the order given. No names keeps all.
func Select(all []Analysis, names []string) ([]Analysis, error) {
	if len(names) == 0 {
		return all, nil
	}
	var out []Analysis
	for _, n := range names {
		n = strings.TrimSpace(n)
		i := slices.IndexFunc(all, func(a Analysis) bool { return a.Name == n })
		if i < 0 {
			return nil, fmt.Errorf("unknown analysis %q", n)
		}
		out = append(out, all[i])
	}
	return out, nil
}

func CompanySize(t *domain.Table) (Result, error) {
	if err := need(t, domain.ColCompanySizeFa); err != nil {
		return Result{}, err
	}
	tl := newTally(false)
	for _, v := range t.Column(domain.ColCompanySizeFa) {
		if label := classify.CompanySize.Classify(v); label != domain.Unspecified {
			tl.add(label)
			tl.rows++
		}
	}
	return Result{Rows: tl.rows, Buckets: tl.inOrder(classify.CompanySize.Labels())}, nil
}

// SenioritySalary is the mean salary per seniority level, outliers above
// the q quantile removed.
func SenioritySalary(seniority classify.Classifier, q float64) func(*domain.Table) (Result, error) {
	return func(t *domain.Table) (Result, error) {
		if err := need(t, domain.ColRawTitle, domain.ColMinSalary, domain.ColMaxSalary); err != nil {
			return Result{}, err
		}
		addAvgSalary(t)

		tl := newTally(true)
		for _, s := range cappedSalaries(t, nil, q) {
			tl.addValue(seniority.Classify(t.Get(s.row, domain.ColRawTitle)), s.avg)
			tl.rows++
		}
		return Result{Rows: tl.rows, Buckets: tl.inOrder(without(seniority.Labels(), domain.Unspecified))}, nil
	}
}

// ExperienceBands counts postings per experience band. Requirements above
// limit years are treated as outliers.
func ExperienceBands(limit float64) func(*domain.Table) (Result, error) {
	return func(t *domain.Table) (Result, error) {
		if err := need(t, domain.ColRequiredExperienceYears); err != nil {
			return Result{}, err
		}
		tl := newTally(false)
		for _, v := range t.Column(domain.ColRequiredExperienceYears) {
			f, ok := v.Float()
			if !ok || f > limit {
				continue
			}
			tl.add(classify.ExperienceBand.ClassifyNumber(f))
			tl.rows++
		}
		return Result{Rows: tl.rows, Buckets: tl.inOrder(classify.ExperienceBand.Labels())}, nil
	}
}

func DegreeLevels(topN int) func(*domain.Table) (Result, error) {
	return func(t *domain.Table) (Result, error) {
		if err := need(t, domain.ColAcademicFields); err != nil {
			return Result{}, err
		}
		tl := newTally(false)
		for _, v := range t.Column(domain.ColAcademicFields) {
			if label := classify.DegreeLevel(v); label != domain.Unspecified {
				tl.add(label)
				tl.rows++
			}
		}
		return Result{Rows: tl.rows, Buckets: tl.top(topN)}, nil
	}
}

// ListCounts counts the items extracted from an embedded-list column. A
// posting counts once per item it lists.
func ListCounts(col string, extract func(domain.Value) []string, topN int) func(*domain.Table) (Result, error) {
	return func(t *domain.Table) (Result, error) {
		if err := need(t, col); err != nil {
			return Result{}, err
		}
		tl := newTally(false)
		for _, v := range t.Column(col) {
			items := extract(v)
			if len(items) == 0 {
				continue
			}
			tl.rows++
			for _, it := range items {
				tl.add(it)
			}
		}
		return Result{Rows: tl.rows, Buckets: tl.top(topN)}, nil
	}
}

func CompanyAge(t *domain.Table) (Result, error) {
	if err := need(t, domain.ColCompanyAge); err != nil {
		return Result{}, err
	}
	tl := newTally(false)
	for _, v := range t.Column(domain.ColCompanyAge) {
		if label := classify.CompanyAge.Classify(v); label != domain.Unspecified {
			tl.add(label)
			tl.rows++
		}
	}
	return Result{Rows: tl.rows, Buckets: tl.inOrder(classify.CompanyAge.Labels())}, nil
}

// ITRoleSalary is the mean salary per IT role, within the IT job
// categories. Roles with fewer than minCount postings are left out.
func ITRoleSalary(roles classify.Classifier, categories []string, q float64, minCount int) func(*domain.Table) (Result, error) {
	return func(t *domain.Table) (Result, error) {
		if err := need(t, domain.ColMainJobCategory, domain.ColRawTitle, domain.ColMinSalary, domain.ColMaxSalary); err != nil {
			return Result{}, err
		}
		addAvgSalary(t)

		inIT := func(row int) bool {
			s, _ := t.Get(row, domain.ColMainJobCategory).AsText()
			return slices.Contains(categories, strings.TrimSpace(s))
		}

		tl := newTally(true)
		for _, s := range cappedSalaries(t, inIT, q) {
			tl.addValue(roles.Classify(t.Get(s.row, domain.ColRawTitle)), s.avg)
		}

		var buckets []Bucket
		for _, b := range tl.top(0) {
			if b.Count >= minCount {
				buckets = append(buckets, b)
				tl.rows += b.Count
			}
		}
		return Result{Rows: tl.rows, Buckets: buckets}, nil
	}
}

// AgeBands buckets the mean of the required age range.
func AgeBands(t *domain.Table) (Result, error) {
	if err := need(t, domain.ColRequiredMinAge, domain.ColRequiredMaxAge); err != nil {
		return Result{}, err
	}
	t.AddColumn(domain.ColAvgRequiredAge, func(row int) domain.Value {
		m, ok := classify.Mean(t.Get(row, domain.ColRequiredMinAge), t.Get(row, domain.ColRequiredMaxAge))
		if !ok {
			return domain.Missing()
		}
		return domain.Number(m)
	})

	tl := newTally(false)
	for _, v := range t.Column(domain.ColAvgRequiredAge) {
		if label := classify.AgeBand.Classify(v); label != domain.Unspecified {
			tl.add(label)
			tl.rows++
		}
	}
	return Result{Rows: tl.rows, Buckets: tl.inOrder(classify.AgeBand.Labels())}, nil
}

// SalaryBands buckets positive salaries, capped at the q quantile of the
// positive ones.
func SalaryBands(q float64) func(*domain.Table) (Result, error) {
	return func(t *domain.Table) (Result, error) {
		if err := need(t, domain.ColMinSalary, domain.ColMaxSalary); err != nil {
			return Result{}, err
		}
		addAvgSalary(t)

		positive := func(row int) bool {
			f, ok := t.Get(row, domain.ColAvgSalary).Float()
			return ok && f > 0
		}

		tl := newTally(false)
		for _, s := range cappedSalaries(t, positive, q) {
			tl.add(classify.SalaryBand.ClassifyNumber(s.avg))
			tl.rows++
		}
		return Result{Rows: tl.rows, Buckets: tl.inOrder(classify.SalaryBand.Labels())}, nil
	}
}

// addAvgSalary sets AvgSalary to the mean of whichever salary bounds are
// present.
func addAvgSalary(t *domain.Table) {
	t.AddColumn(domain.ColAvgSalary, func(row int) domain.Value {
		m, ok := classify.Mean(t.Get(row, domain.ColMinSalary), t.Get(row, domain.ColMaxSalary))
		if !ok {
			return domain.Missing()
		}
		return domain.Number(m)
	})
}

type salaried struct {
	row int
	avg float64
}

// cappedSalaries returns the rows passing keep whose AvgSalary is positive
// and at most the q quantile of those rows' salaries.
func cappedSalaries(t *domain.Table, keep func(row int) bool, q float64) []salaried {
	var all []salaried
	var xs []float64
	for row, v := range t.Column(domain.ColAvgSalary) {
		if keep != nil && !keep(row) {
			continue
		}
		f, ok := v.Float()
		if !ok {
			continue
		}
		all = append(all, salaried{row: row, avg: f})
		xs = append(xs, f)
	}

	limit := quantile(xs, q)
	var out []salaried
	for _, s := range all {
		if s.avg > 0 && s.avg <= limit {
			out = append(out, s)
		}
	}
	return out
}
