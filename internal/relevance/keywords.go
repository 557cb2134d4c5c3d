package relevance

import (
	"regexp"
	"strings"
)

// KeywordSet holds lowercase alphabetic tokens of length >= 3 with common
// stop words removed.
type KeywordSet map[string]struct{}

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "had", "her", "was",
		"one", "our", "out", "day", "get", "has", "him", "his", "how", "man", "new", "now",
		"old", "see", "two", "way", "who", "boy", "did", "its", "let", "put", "say", "she",
		"too", "use", "with", "have", "this", "will", "your", "from", "they", "know", "want",
		"been", "good", "much", "some", "time", "very", "when", "come", "here", "just", "like",
		"long", "make", "many", "over", "such", "take", "than", "them", "well", "were",
	} {
		stopWords[w] = struct{}{}
	}
}

// Keywords extracts the keyword set of a text. Pure: identical input yields
// an identical set.
func Keywords(text string) KeywordSet {
	ks := make(KeywordSet)
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		ks[word] = struct{}{}
	}
	return ks
}

// Overlap counts tokens present in both sets.
func (ks KeywordSet) Overlap(other KeywordSet) int {
	small, large := ks, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for w := range small {
		if _, ok := large[w]; ok {
			n++
		}
	}
	return n
}

// Profile is the immutable persona/job context threaded through every
// scoring call.
type Profile struct {
	Persona     string
	JobToBeDone string

	personaKeywords KeywordSet
	jobKeywords     KeywordSet
}

// NewProfile builds a profile; the keyword sets are fixed at construction.
func NewProfile(persona, jobToBeDone string) Profile {
	return Profile{
		Persona:         persona,
		JobToBeDone:     jobToBeDone,
		personaKeywords: Keywords(persona),
		jobKeywords:     Keywords(jobToBeDone),
	}
}
