package analyze

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"jobposts-engine/internal/domain"
)

// tally counts labels and, when values are added, their running mean.
type tally struct {
	count map[string]int
	sum   map[string]float64
	means bool
	rows  int
}

func newTally(means bool) *tally {
	return &tally{count: map[string]int{}, sum: map[string]float64{}, means: means}
}

func (t *tally) add(label string) { t.count[label]++ }

func (t *tally) addValue(label string, v float64) {
	t.count[label]++
	t.sum[label] += v
}

func (t *tally) bucket(label string) Bucket {
	b := Bucket{Label: label, Count: t.count[label]}
	if t.means && b.Count > 0 {
		m := t.sum[label] / float64(b.Count)
		b.Mean = &m
	}
	return b
}

// inOrder returns non-empty buckets following labels. Labels outside the
// list are left out.
func (t *tally) inOrder(labels []string) []Bucket {
	var out []Bucket
	for _, l := range labels {
		if t.count[l] > 0 {
			out = append(out, t.bucket(l))
		}
	}
	return out
}

// top returns the n most frequent labels, ties broken by label.
func (t *tally) top(n int) []Bucket {
	labels := make([]string, 0, len(t.count))
	for l := range t.count {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		ci, cj := t.count[labels[i]], t.count[labels[j]]
		if ci != cj {
			return ci > cj
		}
		return labels[i] < labels[j]
	})
	if n > 0 && len(labels) > n {
		labels = labels[:n]
	}
	out := make([]Bucket, 0, len(labels))
	for _, l := range labels {
		out = append(out, t.bucket(l))
	}
	return out
}

// quantile interpolates linearly between the closest ranks. Empty input
// gives NaN.
func quantile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	s := slices.Clone(xs)
	slices.Sort(s)

	pos := q * float64(len(s)-1)
	lo := int(math.Floor(pos))
	if lo >= len(s)-1 {
		return s[len(s)-1]
	}
	frac := pos - float64(lo)
	return s[lo] + frac*(s[lo+1]-s[lo])
}

func need(t *domain.Table, cols ...string) error {
	for _, c := range cols {
		if !t.Has(c) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	return nil
}

func without(labels []string, drop string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != drop {
			out = append(out, l)
		}
	}
	return out
}
