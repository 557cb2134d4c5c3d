package relevance

import "fmt"

// DefaultTopSections is how many ranked sections get a refinement record.
const DefaultTopSections = 10

// Refine returns the templated refinement sentence for a ranked section.
// This is deliberately not generated text; callers must not mistake it for
// summarization.
func Refine(section RankedSection, profile Profile) string {
	return fmt.Sprintf("Key insights from %s relevant to %s for %s",
		section.SectionTitle, profile.Persona, profile.JobToBeDone)
}

// Subsections derives a refinement record for each of the top ranked
// sections, in rank order.
func Subsections(ranked []RankedSection, profile Profile, top int) []SubsectionAnalysis {
	if top > len(ranked) {
		top = len(ranked)
	}
	out := make([]SubsectionAnalysis, 0, top)
	for _, section := range ranked[:top] {
		out = append(out, SubsectionAnalysis{
			Document:       section.Document,
			Page:           section.Page,
			SectionTitle:   section.SectionTitle,
			RefinedText:    Refine(section, profile),
			RelevanceScore: section.Rank,
		})
	}
	return out
}
