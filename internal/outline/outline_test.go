package outline

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/docsift/docsift/internal/loader"
)

// stubDoc is a minimal in-memory loader.Document for pipeline tests.
type stubDoc struct {
	pages      []string
	candidates []loader.HeadingCandidate
	titles     []loader.TitleCandidate
	info       loader.Info
}

func (d *stubDoc) PageCount() int { return len(d.pages) }

func (d *stubDoc) PageText(i int) string {
	if i < 0 || i >= len(d.pages) {
		return ""
	}
	return d.pages[i]
}

func (d *stubDoc) AllText() string { return strings.Join(d.pages, "\f") }

func (d *stubDoc) HeadingCandidates() []loader.HeadingCandidate { return d.candidates }

func (d *stubDoc) TitleCandidates() []loader.TitleCandidate { return d.titles }

func (d *stubDoc) Info() loader.Info { return d.info }

func (d *stubDoc) Close() error { return nil }

func TestExtract_FullPipeline(t *testing.T) {
	doc := &stubDoc{
		pages: []string{"Overview of Widgets\nbody text\n"},
		candidates: []loader.HeadingCandidate{
			{Text: "Overview of Widgets", Page: 1},
			{Text: "Page 3", Page: 2},
			{Text: "REVISION HISTORY", Page: 3},
		},
		info: loader.Info{Title: "Widget Manual"},
	}
	result := Extract(doc)
	if result.Title != "Widget Manual" {
		t.Errorf("expected title %q, got %q", "Widget Manual", result.Title)
	}
	if len(result.Outline) != 2 {
		t.Fatalf("expected 2 outline entries, got %d", len(result.Outline))
	}
	if result.Outline[0].Level != LevelH1 {
		t.Errorf("expected first entry H1, got %q", result.Outline[0].Level)
	}
	if result.Error != "" {
		t.Errorf("expected no error, got %q", result.Error)
	}
}

func TestExtract_FallbackToLabels(t *testing.T) {
	doc := &stubDoc{pages: []string{"Name:\nAge:\n"}}
	result := Extract(doc)
	if len(result.Outline) != 2 {
		t.Fatalf("expected 2 label entries, got %d", len(result.Outline))
	}
	if result.Outline[0].Text != "Name" {
		t.Errorf("expected %q, got %q", "Name", result.Outline[0].Text)
	}
}

func TestExtract_OutlineNeverNil(t *testing.T) {
	result := Extract(&stubDoc{pages: []string{""}})
	if result.Outline == nil {
		t.Fatal("expected non-nil outline")
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"outline":[]`) {
		t.Errorf("expected empty array in JSON, got %s", data)
	}
}

func TestErrorResult(t *testing.T) {
	result := ErrorResult(errors.New("corrupt header"))
	if result.Title != "Error" {
		t.Errorf("expected title %q, got %q", "Error", result.Title)
	}
	if result.Error != "failed to load document: corrupt header" {
		t.Errorf("unexpected error message %q", result.Error)
	}
	if result.Outline == nil || len(result.Outline) != 0 {
		t.Errorf("expected empty outline, got %+v", result.Outline)
	}
}
