package relevance

// SectionSpan is a heading enriched with the content lying between it and
// the next heading-like line on its page.
type SectionSpan struct {
	Document string
	Page     int
	Title    string
	Content  string
}

// RankedSection is a section that cleared the relevance threshold. Score is
// the raw relevance in [0,1]; Rank is the 1-based position across the whole
// collection after sorting by score descending. The wire format emits the
// rank under the original importance_rank name.
type RankedSection struct {
	Document     string  `json:"document"`
	Page         int     `json:"page"`
	SectionTitle string  `json:"section_title"`
	Rank         int     `json:"importance_rank"`
	Score        float64 `json:"-"`
}

// SubsectionAnalysis is the refinement record for one top-ranked section.
// RelevanceScore carries the section's ordinal rank, preserving the output
// contract of the persona analysis artifact.
type SubsectionAnalysis struct {
	Document       string `json:"document"`
	Page           int    `json:"page"`
	SectionTitle   string `json:"section_title"`
	RefinedText    string `json:"refined_text"`
	RelevanceScore int    `json:"relevance_score"`
}

// Metadata describes one analysis run.
type Metadata struct {
	Documents   []string `json:"documents"`
	Persona     string   `json:"persona"`
	JobToBeDone string   `json:"job_to_be_done"`
	Timestamp   string   `json:"timestamp"`
}

// AnalysisResult is the final artifact of the multi-document mode.
type AnalysisResult struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []RankedSection      `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}
