package outline

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/docsift/docsift/internal/loader"
)

// UntitledDocument is the last-resort title when every other tier fails.
const UntitledDocument = "Untitled Document"

// Line prefixes that disqualify a first-page line from being the title.
var titleSkipPrefixes = []string{
	"page", "abstract", "introduction", "table of contents", "www.", "http",
}

// Words that make a first-page line strongly title-like.
var titleBoostWords = []string{"challenge", "connecting", "dots", "hackathon"}

// ResolveTitle resolves the document title through a fixed priority cascade:
// metadata title, then the loader's ranked title candidates, then a scored
// scan of the first page, then the first outline entry, then a placeholder.
// First success wins; the result is deterministic.
func ResolveTitle(records []HeadingRecord, info loader.Info, candidates []loader.TitleCandidate, firstPageText string) string {
	if t := strings.TrimSpace(info.Title); utf8.RuneCountInString(t) > 3 {
		return t
	}

	if len(candidates) > 0 {
		top := candidates
		if len(top) > 2 {
			top = top[:2]
		}
		parts := make([]string, 0, len(top))
		for _, c := range top {
			parts = append(parts, c.Text)
		}
		return strings.Join(parts, "  ")
	}

	if t := titleFromText(firstPageText); t != "" {
		return t
	}

	if len(records) > 0 {
		return records[0].Text
	}

	return UntitledDocument
}

// titleFromText scores the first 15 non-trivial lines of page 1 and returns
// the best, ties broken by encounter order.
func titleFromText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if n := utf8.RuneCountInString(line); n > 5 && n < 200 {
			lines = append(lines, line)
		}
	}
	if len(lines) > 15 {
		lines = lines[:15]
	}

	type scoredLine struct {
		text  string
		score int
	}
	var candidates []scoredLine

	for i, line := range lines {
		lower := strings.ToLower(line)
		if hasAnyPrefix(lower, titleSkipPrefixes) {
			continue
		}
		score := 0
		if containsAny(lower, titleBoostWords) {
			score += 3
		}
		if i < 5 {
			score += 2
		}
		if n := utf8.RuneCountInString(line); n >= 10 && n <= 100 {
			score++
		}
		candidates = append(candidates, scoredLine{text: line, score: score})
	}

	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	return candidates[0].text
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
