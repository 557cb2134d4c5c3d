package loader

import (
	"strings"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
	}{
		{"doc.txt", "*loader.TextOpener"},
		{"doc.md", "*loader.MarkdownOpener"},
		{"doc.markdown", "*loader.MarkdownOpener"},
		{"doc.html", "*loader.HTMLOpener"},
		{"doc.HTM", "*loader.HTMLOpener"},
		{"doc.pdf", "*loader.PDFOpener"},
		{"doc.docx", "*loader.DOCXOpener"},
	}
	for _, tt := range tests {
		opener, err := ForFile(tt.filename)
		if err != nil {
			t.Errorf("ForFile(%q): unexpected error %v", tt.filename, err)
			continue
		}
		if got := typeName(opener); got != tt.wantType {
			t.Errorf("ForFile(%q): expected %s, got %s", tt.filename, tt.wantType, got)
		}
	}
}

func typeName(o Opener) string {
	switch o.(type) {
	case *TextOpener:
		return "*loader.TextOpener"
	case *MarkdownOpener:
		return "*loader.MarkdownOpener"
	case *HTMLOpener:
		return "*loader.HTMLOpener"
	case *PDFOpener:
		return "*loader.PDFOpener"
	case *DOCXOpener:
		return "*loader.DOCXOpener"
	default:
		return "unknown"
	}
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("archive.zip"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"a.pdf", true},
		{"a.PDF", true},
		{"a.docx", true},
		{"a.txt", true},
		{"a.exe", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsSupportedExtension(tt.filename); got != tt.want {
			t.Errorf("IsSupportedExtension(%q): expected %v, got %v", tt.filename, tt.want, got)
		}
	}
}

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello   World ", "Hello World"},
		{"tabs\tand\tspaces", "tabs and spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeLine(tt.in); got != tt.want {
			t.Errorf("normalizeLine(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestTextOpener_PageBreaks(t *testing.T) {
	doc, err := (&TextOpener{}).Open(strings.NewReader("page one line\fpage two line\nmore text"), "doc.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	if doc.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", doc.PageCount())
	}
	if got := doc.PageText(0); got != "page one line" {
		t.Errorf("page 0: got %q", got)
	}
	if !strings.Contains(doc.PageText(1), "more text") {
		t.Errorf("page 1: got %q", doc.PageText(1))
	}
	if len(doc.HeadingCandidates()) != 0 {
		t.Errorf("expected no heading candidates from plain text, got %d", len(doc.HeadingCandidates()))
	}
}

func TestTextOpener_OutOfRangePage(t *testing.T) {
	doc, err := (&TextOpener{}).Open(strings.NewReader("only page"), "doc.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := doc.PageText(5); got != "" {
		t.Errorf("expected empty text for out-of-range page, got %q", got)
	}
	if got := doc.PageText(-1); got != "" {
		t.Errorf("expected empty text for negative page, got %q", got)
	}
}

func TestMarkdownOpener(t *testing.T) {
	src := "# Widget Manual\n\nSome intro paragraph.\n\n## INTRODUCTION TO WIDGETS\n\nBody text.\n"
	doc, err := (&MarkdownOpener{}).Open(strings.NewReader(src), "doc.md")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	candidates := doc.HeadingCandidates()
	if len(candidates) != 2 {
		t.Fatalf("expected 2 heading candidates, got %d", len(candidates))
	}
	if candidates[0].Text != "Widget Manual" {
		t.Errorf("expected first candidate %q, got %q", "Widget Manual", candidates[0].Text)
	}
	if candidates[1].Text != "INTRODUCTION TO WIDGETS" {
		t.Errorf("expected second candidate %q, got %q", "INTRODUCTION TO WIDGETS", candidates[1].Text)
	}

	titles := doc.TitleCandidates()
	if len(titles) != 1 || titles[0].Text != "Widget Manual" {
		t.Errorf("expected level-1 heading as title candidate, got %+v", titles)
	}

	if doc.PageCount() != 1 {
		t.Errorf("expected single page, got %d", doc.PageCount())
	}
	if !strings.Contains(doc.PageText(0), "Some intro paragraph.") {
		t.Errorf("expected body text in page, got %q", doc.PageText(0))
	}
}

func TestHTMLOpener(t *testing.T) {
	src := `<html><head><title>Doc Title</title></head><body>
<header>site chrome</header>
<h1>Main Section</h1>
<p>A paragraph of text.</p>
<h2>SECOND SECTION</h2>
<script>ignored()</script>
</body></html>`
	doc, err := (&HTMLOpener{}).Open(strings.NewReader(src), "doc.html")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	if got := doc.Info().Title; got != "Doc Title" {
		t.Errorf("expected metadata title %q, got %q", "Doc Title", got)
	}

	candidates := doc.HeadingCandidates()
	if len(candidates) != 2 {
		t.Fatalf("expected 2 heading candidates, got %d", len(candidates))
	}
	if candidates[0].Text != "Main Section" || candidates[1].Text != "SECOND SECTION" {
		t.Errorf("unexpected candidates %+v", candidates)
	}

	titles := doc.TitleCandidates()
	if len(titles) != 1 || titles[0].Text != "Main Section" {
		t.Errorf("expected h1 as title candidate, got %+v", titles)
	}

	body := doc.PageText(0)
	if !strings.Contains(body, "A paragraph of text.") {
		t.Errorf("expected paragraph in body, got %q", body)
	}
	if strings.Contains(body, "ignored()") {
		t.Errorf("script content leaked into body: %q", body)
	}
	if strings.Contains(body, "site chrome") {
		t.Errorf("header chrome leaked into body: %q", body)
	}
}

func TestDocumentAllText(t *testing.T) {
	doc := &document{pages: []string{"one", "two"}}
	if got := doc.AllText(); got != "one\ftwo" {
		t.Errorf("expected form-feed joined text, got %q", got)
	}
}
