package clean

import (
	"regexp"
	"strings"

	"jobposts-engine/internal/config"
	"jobposts-engine/internal/domain"
)

// Dictionary is an ordered phrase table. A phrase listed twice keeps the
// position of its first entry and the replacement of its last.
type Dictionary struct {
	keys []string
	to   map[string]string
}

func NewDictionary(pairs []config.Pair) Dictionary {
	d := Dictionary{to: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		if p.From == "" {
			continue
		}
		if _, seen := d.to[p.From]; !seen {
			d.keys = append(d.keys, p.From)
		}
		d.to[p.From] = p.To
	}
	return d
}

func (d Dictionary) Len() int { return len(d.keys) }

// Pairs returns the resolved entries in replacement order.
func (d Dictionary) Pairs() []config.Pair {
	out := make([]config.Pair, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, config.Pair{From: k, To: d.to[k]})
	}
	return out
}

type substitution struct {
	re *regexp.Regexp
	to string
}

// Translator rewrites mixed-language phrases in text columns. Matching is
// literal and case-insensitive, with no word boundaries: "IT" also hits
// the "it" inside "with".
type Translator struct {
	columns   []string
	markup    map[string]bool
	separator config.Pair
	subs      []substitution
}

type TranslateReport struct {
	// Changed counts rewritten cells per column.
	Changed map[string]int
	// Absent lists configured columns the table does not have.
	Absent []string
}

func NewTranslator(columns, markupColumns []string, separator config.Pair, dict Dictionary) *Translator {
	tr := &Translator{
		columns:   columns,
		markup:    make(map[string]bool, len(markupColumns)),
		separator: separator,
	}
	for _, c := range markupColumns {
		tr.markup[c] = true
	}
	for _, p := range dict.Pairs() {
		tr.subs = append(tr.subs, substitution{
			re: regexp.MustCompile("(?i)" + regexp.QuoteMeta(p.From)),
			to: p.To,
		})
	}
	return tr
}

// Text applies the separator step and then every dictionary entry in order.
func (tr *Translator) Text(s string) string {
	if tr.separator.From != "" {
		s = strings.ReplaceAll(s, tr.separator.From, tr.separator.To)
	}
	for _, sub := range tr.subs {
		s = sub.re.ReplaceAllLiteralString(s, sub.to)
	}
	return s
}

// Apply rewrites the configured columns in place. Cells that hold no text
// are left alone.
func (tr *Translator) Apply(t *domain.Table) TranslateReport {
	rep := TranslateReport{Changed: map[string]int{}}

	for _, col := range tr.columns {
		if !t.Has(col) {
			rep.Absent = append(rep.Absent, col)
			continue
		}
		for row, v := range t.Column(col) {
			s, ok := v.AsText()
			if !ok {
				continue
			}
			out := s
			if tr.markup[col] {
				out = stripMarkup(out)
			}
			out = tr.Text(out)
			if out != s {
				t.Set(row, col, domain.Text(out))
				rep.Changed[col]++
			}
		}
	}
	return rep
}
