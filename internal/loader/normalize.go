package loader

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeLine trims, collapses internal whitespace, and applies NFKC so
// ligatures and fullwidth forms extracted from PDFs compare cleanly against
// the plain-text heuristics downstream.
func normalizeLine(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	return norm.NFKC.String(s)
}
