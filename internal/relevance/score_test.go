package relevance

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScore_EmptyProfile(t *testing.T) {
	section := SectionSpan{Title: "Methodology", Content: "results analysis"}
	if got := Score(section, NewProfile("", "")); got != 0 {
		t.Errorf("expected score 0 for empty profile, got %v", got)
	}
}

func TestScore_JobOverlapDominates(t *testing.T) {
	profile := NewProfile("chef", "prepare vegetarian menu")
	section := SectionSpan{Title: "Vegetarian Menu Ideas", Content: "menu options"}
	// 2 of 3 job keywords match, no persona overlap, no domain bonus.
	want := 0.6 * (2.0 / 3.0)
	if got := Score(section, profile); !almostEqual(got, want) {
		t.Errorf("expected score %v, got %v", want, got)
	}
}

func TestScore_ResearchDomainBonus(t *testing.T) {
	profile := NewProfile("PhD researcher", "literature review")
	section := SectionSpan{Title: "Methodology", Content: "results analysis hypothesis"}
	// No keyword overlap with persona or job; 4 research terms at 0.05 each.
	if got := Score(section, profile); !almostEqual(got, 0.2) {
		t.Errorf("expected score 0.2, got %v", got)
	}
}

func TestScore_BonusCapped(t *testing.T) {
	profile := NewProfile("researcher", "")
	section := SectionSpan{
		Title:   "Everything",
		Content: "methodology analysis results conclusion abstract literature experiment data findings hypothesis",
	}
	// 10 matching terms would be 0.5 uncapped.
	if got := Score(section, profile); !almostEqual(got, 0.3) {
		t.Errorf("expected capped score 0.3, got %v", got)
	}
}

func TestScore_MultipleCategoriesAccumulate(t *testing.T) {
	// "business student" triggers the research, business, and education
	// vocabularies; matches are summed across them before the cap.
	profile := NewProfile("business student", "")
	section := SectionSpan{Title: "Notes", Content: "analysis growth concept"}
	// research: analysis. business: growth, analysis. education: concept.
	if got := Score(section, profile); !almostEqual(got, 0.2) {
		t.Errorf("expected score 0.2, got %v", got)
	}
}

func TestScore_NeverExceedsOne(t *testing.T) {
	terms := "methodology analysis results conclusion abstract literature experiment data findings hypothesis"
	profile := NewProfile("researcher "+terms, terms)
	section := SectionSpan{Title: "All Terms", Content: terms}
	got := Score(section, profile)
	if got < 0 || got > 1 {
		t.Errorf("expected score in [0,1], got %v", got)
	}
	if !almostEqual(got, 1.0) {
		t.Errorf("expected saturated score 1.0, got %v", got)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	profile := NewProfile("chef", "VEGETARIAN MENU")
	lower := Score(SectionSpan{Title: "vegetarian menu"}, profile)
	upper := Score(SectionSpan{Title: "VEGETARIAN MENU"}, profile)
	if !almostEqual(lower, upper) {
		t.Errorf("expected case-insensitive scoring, got %v and %v", lower, upper)
	}
	if lower == 0 {
		t.Error("expected nonzero overlap score")
	}
}

func TestScore_UsesTitleAndContent(t *testing.T) {
	profile := NewProfile("", "vegetarian menu")
	titleOnly := Score(SectionSpan{Title: "vegetarian"}, profile)
	both := Score(SectionSpan{Title: "vegetarian", Content: strings.Repeat("menu ", 3)}, profile)
	if both <= titleOnly {
		t.Errorf("expected content matches to raise the score: title-only %v, both %v", titleOnly, both)
	}
}
