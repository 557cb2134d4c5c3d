package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/docsift/docsift/internal/loader"
)

const (
	minHeadingLen = 3
	maxHeadingLen = 150
)

// noiseRule names one rejection predicate. Rules run in order against the
// trimmed candidate text; any match discards the candidate.
type noiseRule struct {
	name   string
	reject func(text string) bool
}

var datePattern = regexp.MustCompile(`^\d{1,2} [A-Z]{3,}`)

var noiseRules = []noiseRule{
	{"boilerplate-prefix", func(t string) bool {
		lower := strings.ToLower(t)
		for _, p := range []string{"page", "figure", "table", "ref", "www.", "http"} {
			if strings.HasPrefix(lower, p) {
				return true
			}
		}
		return false
	}},
	{"date-like", datePattern.MatchString},
}

// Phrases that mark structurally important headings regardless of shape.
var importantPhrases = []string{
	"revision history",
	"table of contents",
	"acknowledgements",
	"introduction",
	"overview",
	"syllabus",
}

// Phrases that promote a heading to the top hierarchy level.
var topLevelMarkers = []string{"overview of", "introduction to", "references"}

// Segment filters raw heading candidates into a clean ordered list of
// heading records. Candidate order is preserved; duplicate texts after the
// first accepted occurrence are dropped.
func Segment(candidates []loader.HeadingCandidate) []HeadingRecord {
	seen := make(map[string]struct{})
	var records []HeadingRecord

	for _, c := range candidates {
		text := strings.TrimSpace(c.Text)
		if _, dup := seen[text]; dup {
			continue
		}
		if n := utf8.RuneCountInString(text); n < minHeadingLen || n > maxHeadingLen {
			continue
		}
		if isNoise(text) {
			continue
		}
		if importance(text) == 0 {
			continue
		}
		records = append(records, HeadingRecord{
			Level: headingLevel(text),
			Text:  text,
			Page:  c.Page,
		})
		seen[text] = struct{}{}
	}

	return records
}

func isNoise(text string) bool {
	for _, rule := range noiseRules {
		if rule.reject(text) {
			return true
		}
	}
	return false
}

// importance scores how heading-like a candidate is: 2 for known structural
// phrases, 1 for form-field labels and short all-caps lines, 0 otherwise.
func importance(text string) int {
	lower := strings.ToLower(text)
	for _, phrase := range importantPhrases {
		if strings.Contains(lower, phrase) {
			return 2
		}
	}
	if isFormLabel(text) {
		return 1
	}
	if n := utf8.RuneCountInString(text); isUpper(text) && n > 5 && n < 60 {
		return 1
	}
	return 0
}

func headingLevel(text string) Level {
	lower := strings.ToLower(text)
	for _, marker := range topLevelMarkers {
		if strings.Contains(lower, marker) {
			return LevelH1
		}
	}
	return LevelH2
}

// isFormLabel reports form-field labels like "Name:" or "Date of Birth:".
func isFormLabel(text string) bool {
	return strings.HasSuffix(text, ":") && len(strings.Fields(text)) <= 8
}

// isUpper reports whether text has at least one cased rune and none of its
// cased runes are lowercase.
func isUpper(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// FallbackLabels recovers structure for label-only documents with no prose
// headings: every page-1 line ending in a colon with at most 8 words becomes
// an H2 record, trailing colons stripped.
func FallbackLabels(firstPageText string) []HeadingRecord {
	var records []HeadingRecord
	for _, line := range strings.Split(firstPageText, "\n") {
		line = strings.TrimSpace(line)
		if !isFormLabel(line) {
			continue
		}
		text := strings.TrimRight(line, ":")
		if text == "" {
			continue
		}
		records = append(records, HeadingRecord{Level: LevelH2, Text: text, Page: 1})
	}
	return records
}
