package loader

import "strings"

// document is the in-memory Document shared by all openers. Every format is
// fully extracted at open time, so Close never has resources left to release.
type document struct {
	pages      []string
	candidates []HeadingCandidate
	titles     []TitleCandidate
	info       Info
}

func (d *document) PageCount() int { return len(d.pages) }

func (d *document) PageText(page int) string {
	if page < 0 || page >= len(d.pages) {
		return ""
	}
	return d.pages[page]
}

func (d *document) AllText() string {
	// Form feed as page separator, matching the extraction convention.
	return strings.Join(d.pages, "\f")
}

func (d *document) HeadingCandidates() []HeadingCandidate { return d.candidates }

func (d *document) TitleCandidates() []TitleCandidate { return d.titles }

func (d *document) Info() Info { return d.info }

func (d *document) Close() error { return nil }
