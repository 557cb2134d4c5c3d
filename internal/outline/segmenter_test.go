package outline

import (
	"strings"
	"testing"

	"github.com/docsift/docsift/internal/loader"
)

func TestSegment_LengthBounds(t *testing.T) {
	candidates := []loader.HeadingCandidate{
		{Text: "ab", Page: 1},
		{Text: strings.Repeat("A", 151), Page: 1},
		{Text: "REVISION HISTORY", Page: 1},
	}
	records := Segment(candidates)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Text != "REVISION HISTORY" {
		t.Errorf("expected %q, got %q", "REVISION HISTORY", records[0].Text)
	}
}

func TestSegment_NoiseRejection(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"page prefix", "Page 12 of 40"},
		{"figure prefix", "Figure 3: Results"},
		{"table prefix", "Table of Contents"},
		{"ref prefix", "References and Notes"},
		{"url prefix", "www.example.com/docs"},
		{"http prefix", "http://example.com"},
		{"date-like", "12 JAN 2024 MEETING"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Segment([]loader.HeadingCandidate{{Text: tt.text, Page: 1}})
			if len(records) != 0 {
				t.Errorf("expected %q to be rejected, got %+v", tt.text, records)
			}
		})
	}
}

func TestSegment_FormLabelsAreH2(t *testing.T) {
	candidates := []loader.HeadingCandidate{
		{Text: "Name:", Page: 1},
		{Text: "Date of Birth:", Page: 1},
		{Text: "One two three four five six seven eight nine:", Page: 1}, // 9 words, too long
	}
	records := Segment(candidates)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, rec := range records {
		if rec.Level != LevelH2 {
			t.Errorf("expected level H2 for %q, got %q", rec.Text, rec.Level)
		}
	}
}

func TestSegment_UppercaseHeadings(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"SYSTEM DESIGN", 1},
		{"ABCDE", 0}, // 5 runes, needs more than 5
		{strings.Repeat("A", 60) + " " + strings.Repeat("B", 60), 0}, // 121 runes, over the caps limit
		{"MIXED case LINE", 0},
	}
	for _, tt := range tests {
		records := Segment([]loader.HeadingCandidate{{Text: tt.text, Page: 1}})
		if len(records) != tt.want {
			t.Errorf("Segment(%q): expected %d records, got %d", tt.text, tt.want, len(records))
		}
	}
}

func TestSegment_ImportantPhrases(t *testing.T) {
	candidates := []loader.HeadingCandidate{
		{Text: "Revision History", Page: 1},
		{Text: "Acknowledgements", Page: 2},
		{Text: "Course Syllabus", Page: 3},
	}
	records := Segment(candidates)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}

func TestSegment_LevelAssignment(t *testing.T) {
	tests := []struct {
		text string
		want Level
	}{
		{"Overview of the Protocol", LevelH1},
		{"Introduction to Parsing", LevelH1},
		{"Revision History", LevelH2},
		{"Name:", LevelH2},
	}
	for _, tt := range tests {
		records := Segment([]loader.HeadingCandidate{{Text: tt.text, Page: 1}})
		if len(records) != 1 {
			t.Fatalf("Segment(%q): expected 1 record, got %d", tt.text, len(records))
		}
		if records[0].Level != tt.want {
			t.Errorf("Segment(%q): expected level %q, got %q", tt.text, tt.want, records[0].Level)
		}
	}
}

func TestSegment_DeduplicatesExactText(t *testing.T) {
	candidates := []loader.HeadingCandidate{
		{Text: "Introduction", Page: 1},
		{Text: "Introduction", Page: 5},
		{Text: "INTRODUCTION", Page: 7}, // different case, kept
	}
	records := Segment(candidates)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Page != 1 {
		t.Errorf("expected first occurrence to win (page 1), got page %d", records[0].Page)
	}
	seen := make(map[string]bool)
	for _, rec := range records {
		if seen[rec.Text] {
			t.Errorf("duplicate text %q in output", rec.Text)
		}
		seen[rec.Text] = true
	}
}

func TestSegment_PreservesCandidateOrder(t *testing.T) {
	candidates := []loader.HeadingCandidate{
		{Text: "Overview", Page: 1},
		{Text: "SYSTEM DESIGN", Page: 2},
		{Text: "Acknowledgements", Page: 9},
	}
	records := Segment(candidates)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	wantPages := []int{1, 2, 9}
	for i, rec := range records {
		if rec.Page != wantPages[i] {
			t.Errorf("record[%d]: expected page %d, got %d", i, wantPages[i], rec.Page)
		}
	}
}

func TestFallbackLabels_FormDocument(t *testing.T) {
	records := FallbackLabels("Name:\nAge:\nsome body text\n")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	want := []string{"Name", "Age"}
	for i, rec := range records {
		if rec.Text != want[i] {
			t.Errorf("record[%d]: expected text %q, got %q", i, want[i], rec.Text)
		}
		if rec.Level != LevelH2 {
			t.Errorf("record[%d]: expected level H2, got %q", i, rec.Level)
		}
		if rec.Page != 1 {
			t.Errorf("record[%d]: expected page 1, got %d", i, rec.Page)
		}
	}
}

func TestFallbackLabels_NoLabels(t *testing.T) {
	records := FallbackLabels("just prose\nwith no labels at all\n")
	if len(records) != 0 {
		t.Errorf("expected no records, got %+v", records)
	}
}
