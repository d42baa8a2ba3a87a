package clean

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// collapseSpace folds NBSP and runs of whitespace into single spaces.
func collapseSpace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// stripMarkup returns the text content of an HTML fragment. Text without
// '<', or that fails to parse, is returned unchanged.
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return collapseSpace(doc.Text())
}
