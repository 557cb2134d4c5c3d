package relevance

import (
	"math"
	"strings"
)

const (
	jobWeight     = 0.6
	personaWeight = 0.4
	bonusPerTerm  = 0.05
	maxBonus      = 0.3
)

// domainBonus pairs persona trigger words with the vocabulary that earns a
// bonus when found in a section. New personas are data, not code.
type domainBonus struct {
	triggers []string
	terms    []string
}

var domainBonuses = []domainBonus{
	{
		triggers: []string{"researcher", "phd", "academic", "student"},
		terms: []string{
			"methodology", "analysis", "results", "conclusion", "abstract",
			"literature", "experiment", "data", "findings", "hypothesis",
		},
	},
	{
		triggers: []string{"analyst", "investment", "business"},
		terms: []string{
			"revenue", "profit", "growth", "market", "financial", "strategy",
			"competitive", "performance", "roi", "analysis",
		},
	},
	{
		triggers: []string{"student", "learner", "education"},
		terms: []string{
			"concept", "principle", "theory", "example", "definition",
			"explanation", "practice", "exercise", "summary",
		},
	},
}

// Score computes the lexical relevance of a section to a profile, in [0,1].
// It is the weighted keyword overlap with the job and persona texts plus a
// capped domain bonus for personas with a known vocabulary.
func Score(section SectionSpan, profile Profile) float64 {
	combined := strings.ToLower(section.Title + " " + section.Content)
	sectionKeywords := Keywords(combined)

	personaScore := float64(profile.personaKeywords.Overlap(sectionKeywords)) /
		math.Max(float64(len(profile.personaKeywords)), 1)
	jobScore := float64(profile.jobKeywords.Overlap(sectionKeywords)) /
		math.Max(float64(len(profile.jobKeywords)), 1)

	base := jobWeight*jobScore + personaWeight*personaScore
	return math.Min(base+domainBonusFor(profile.Persona, combined), 1.0)
}

// domainBonusFor awards a fixed bonus per domain term present in the section
// text, for every bonus category the persona text triggers. The total is
// capped so lexical overlap stays the dominant signal.
func domainBonusFor(persona, sectionText string) float64 {
	personaLower := strings.ToLower(persona)
	bonus := 0.0
	for _, db := range domainBonuses {
		if !containsAnyWord(personaLower, db.triggers) {
			continue
		}
		matches := 0
		for _, term := range db.terms {
			if strings.Contains(sectionText, term) {
				matches++
			}
		}
		bonus += float64(matches) * bonusPerTerm
	}
	return math.Min(bonus, maxBonus)
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
