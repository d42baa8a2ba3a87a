package classify

import (
	"math"

	"jobposts-engine/internal/domain"
)

// Band covers values up to and including UpTo.
type Band struct {
	Label string
	UpTo  float64
}

// Bands is an ordered set of upper-inclusive numeric ranges. Values past
// the last UpTo fall into Over.
type Bands struct {
	Bands []Band
	Over  string
	// Min and Max bound the values that are classified at all.
	Min, Max float64
}

func (b Bands) ClassifyNumber(f float64) string {
	if math.IsNaN(f) || f < b.Min || f > b.Max {
		return domain.Unspecified
	}
	for _, band := range b.Bands {
		if f <= band.UpTo {
			return band.Label
		}
	}
	if b.Over == "" {
		return domain.Unspecified
	}
	return b.Over
}

func (b Bands) Classify(v domain.Value) string {
	f, ok := v.Float()
	if !ok {
		return domain.Unspecified
	}
	return b.ClassifyNumber(f)
}

func (b Bands) Labels() []string {
	out := make([]string, 0, len(b.Bands)+2)
	for _, band := range b.Bands {
		out = append(out, band.Label)
	}
	if b.Over != "" {
		out = append(out, b.Over)
	}
	return append(out, domain.Unspecified)
}

// Mean averages the numeric cells among vs, skipping the rest.
func Mean(vs ...domain.Value) (float64, bool) {
	var sum float64
	n := 0
	for _, v := range vs {
		if f, ok := v.Float(); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

const (
	ExpNone    = "کارآموز / بدون سابقه"
	ExpLow     = "کم‌تجربه (۱ تا ۳ سال)"
	ExpMid     = "باتجربه (۳ تا ۷ سال)"
	ExpSenior  = "ارشد (۷ تا ۱۰ سال)"
	ExpVeteran = "بسیار باتجربه (بیش از ۱۰ سال)"
)

// ExperienceBand buckets required years of experience.
var ExperienceBand = Bands{
	Bands: []Band{
		{Label: ExpNone, UpTo: 1},
		{Label: ExpLow, UpTo: 3},
		{Label: ExpMid, UpTo: 7},
		{Label: ExpSenior, UpTo: 10},
	},
	Over: ExpVeteran,
	Min:  math.Inf(-1),
	Max:  math.Inf(1),
}

// AgeBand buckets the mean of the required age range. Means outside
// 18..65 are treated as unspecified.
var AgeBand = Bands{
	Bands: []Band{
		{Label: "۱۸ تا ۲۵ سال", UpTo: 25},
		{Label: "۲۵ تا ۳۰ سال", UpTo: 30},
		{Label: "۳۰ تا ۳۵ سال", UpTo: 35},
		{Label: "۳۵ تا ۴۵ سال", UpTo: 45},
		{Label: "۴۵ تا ۶۵ سال", UpTo: 65},
	},
	Min: 18,
	Max: 65,
}

// SalaryBand buckets a monthly salary in million toman. Non-positive
// salaries are unspecified.
var SalaryBand = Bands{
	Bands: []Band{
		{Label: "تا ۱۰ میلیون", UpTo: 10},
		{Label: "۱۰ تا ۲۰ میلیون", UpTo: 20},
		{Label: "۲۰ تا ۳۰ میلیون", UpTo: 30},
		{Label: "۳۰ تا ۵۰ میلیون", UpTo: 50},
	},
	Over: "بیش از ۵۰ میلیون",
	Min:  math.SmallestNonzeroFloat64,
	Max:  math.Inf(1),
}
