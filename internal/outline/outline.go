package outline

import "github.com/docsift/docsift/internal/loader"

// Level is the hierarchy level of an accepted heading. The classifier emits
// a flat two-level hierarchy.
type Level string

const (
	LevelH1 Level = "H1"
	LevelH2 Level = "H2"
)

// HeadingRecord is one accepted, leveled heading.
type HeadingRecord struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// DocumentResult is the outline artifact for one document.
type DocumentResult struct {
	Title   string          `json:"title"`
	Outline []HeadingRecord `json:"outline"`
	Error   string          `json:"error,omitempty"`
}

// Extract runs the full outline pipeline on one document: segment the
// loader's heading candidates, fall back to a label scan of page 1 when
// nothing survives filtering, then resolve the title.
func Extract(doc loader.Document) DocumentResult {
	records := Segment(doc.HeadingCandidates())
	if len(records) == 0 {
		records = FallbackLabels(doc.PageText(0))
	}
	title := ResolveTitle(records, doc.Info(), doc.TitleCandidates(), doc.PageText(0))
	if records == nil {
		records = []HeadingRecord{}
	}
	return DocumentResult{Title: title, Outline: records}
}

// ErrorResult is the structured result for a document that could not be
// loaded. Failures degrade to a well-formed object instead of propagating.
func ErrorResult(err error) DocumentResult {
	return DocumentResult{
		Title:   "Error",
		Outline: []HeadingRecord{},
		Error:   "failed to load document: " + err.Error(),
	}
}
