package relevance

import "sort"

// DefaultThreshold is the minimum score a section must exceed to be ranked.
const DefaultThreshold = 0.1

// Rank filters scored sections to those strictly above the threshold, sorts
// them by score descending across the whole collection (ties keep encounter
// order), and assigns 1-based ranks. There is no per-document quota.
func Rank(sections []RankedSection, threshold float64) []RankedSection {
	ranked := make([]RankedSection, 0, len(sections))
	for _, s := range sections {
		if s.Score > threshold {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
