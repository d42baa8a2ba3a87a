package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Both transformers are stateless, so they are shared across goroutines.
var (
	dropThousands = runes.Remove(runes.In(arabicThousands))

	// foldDigits rewrites Persian and Arabic-Indic digits and the Arabic
	// decimal separator to ASCII.
	foldDigits = runes.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r == '٫':
			return '.'
		}
		return r
	})
)

var arabicThousands = &unicode.RangeTable{R16: []unicode.Range16{{Lo: '٬', Hi: '٬', Stride: 1}}}

// ParseNumber parses a numeric cell. NaN and unparsable text report false.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, t := range []transform.Transformer{dropThousands, foldDigits} {
		if out, _, err := transform.String(t, s); err == nil {
			s = out
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Float reads a cell as a number: numeric cells directly, text cells by
// parsing. Everything else reports false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.AsNumber()
	case KindText:
		return ParseNumber(v.text)
	default:
		return 0, false
	}
}
