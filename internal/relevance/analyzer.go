package relevance

import (
	"log/slog"
	"time"

	"github.com/docsift/docsift/internal/loader"
	"github.com/docsift/docsift/internal/outline"
)

// Source is one document in a collection, opened lazily so a load failure
// can be skipped without aborting the batch.
type Source struct {
	Filename string
	Open     func() (loader.Document, error)
}

// Analyzer runs the persona-driven relevance pipeline over a collection.
type Analyzer struct {
	log       *slog.Logger
	threshold float64
	top       int
}

func NewAnalyzer(log *slog.Logger, threshold float64, topSections int) *Analyzer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if topSections <= 0 {
		topSections = DefaultTopSections
	}
	return &Analyzer{log: log, threshold: threshold, top: topSections}
}

// Analyze processes documents strictly sequentially: segment each document's
// headings, expand them into content spans, score every span against the
// profile, then rank across the whole collection. A document that fails to
// load is logged and skipped; its name still appears in the metadata.
func (a *Analyzer) Analyze(sources []Source, profile Profile) AnalysisResult {
	names := make([]string, 0, len(sources))
	var scored []RankedSection

	for _, src := range sources {
		names = append(names, src.Filename)

		doc, err := src.Open()
		if err != nil {
			a.log.Error("skipping document", "file", src.Filename, "error", err)
			continue
		}
		scored = append(scored, a.collectSections(doc, src.Filename, profile)...)
		doc.Close()
	}

	ranked := Rank(scored, a.threshold)

	return AnalysisResult{
		Metadata: Metadata{
			Documents:   names,
			Persona:     profile.Persona,
			JobToBeDone: profile.JobToBeDone,
			Timestamp:   time.Now().Format("2006-01-02 15:04:05"),
		},
		ExtractedSections:  ranked,
		SubsectionAnalysis: Subsections(ranked, profile, a.top),
	}
}

// collectSections segments one document and scores each heading's content
// span. Headings pointing past the last page keep an empty span.
func (a *Analyzer) collectSections(doc loader.Document, filename string, profile Profile) []RankedSection {
	records := outline.Segment(doc.HeadingCandidates())

	sections := make([]RankedSection, 0, len(records))
	for _, rec := range records {
		content := ""
		if page := rec.Page - 1; page >= 0 && page < doc.PageCount() {
			content = ExpandContent(doc.PageText(page), rec.Text)
		}
		span := SectionSpan{
			Document: filename,
			Page:     rec.Page,
			Title:    rec.Text,
			Content:  content,
		}
		sections = append(sections, RankedSection{
			Document:     span.Document,
			Page:         span.Page,
			SectionTitle: span.Title,
			Score:        Score(span, profile),
		})
	}
	a.log.Debug("collected sections", "file", filename, "sections", len(sections))
	return sections
}
