package embedded

import "strings"

// QuoteNormalizer turns a loosely quoted cell into text a strict JSON
// decoder can read.
type QuoteNormalizer func(string) string

// NaiveQuotes swaps every single quote for a double quote. The exports
// quote keys and values with ', so this recovers most cells, but an
// apostrophe inside a value ("Developer's Guide") becomes a stray " and
// the whole cell then fails to decode.
func NaiveQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `"`)
}
