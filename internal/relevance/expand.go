package relevance

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// headingShapes are the line shapes that end a section's content span:
// numbered headings, all-caps lines, and Title Case lines.
var headingShapes = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.?\s+[A-Z]`),
	regexp.MustCompile(`^[A-Z][A-Z\s]+$`),
	regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*$`),
}

// ExpandContent locates the section title's line within its page and returns
// the text up to the next heading-like line, or the page end. The heading
// line itself is excluded. If the title is not found the content is empty.
func ExpandContent(pageText, sectionTitle string) string {
	lines := strings.Split(pageText, "\n")
	lowerTitle := strings.ToLower(sectionTitle)

	start := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), lowerTitle) {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if utf8.RuneCountInString(line) > 3 && looksLikeHeading(line) {
			end = i
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start+1:end], "\n"))
}

func looksLikeHeading(text string) bool {
	if n := utf8.RuneCountInString(text); n < 3 || n > 150 {
		return false
	}
	for _, shape := range headingShapes {
		if shape.MatchString(text) {
			return true
		}
	}
	return false
}
