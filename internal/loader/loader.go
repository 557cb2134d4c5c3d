package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// HeadingCandidate is a line the loader judged visually distinct enough to
// possibly be a heading, with its 1-based page number.
type HeadingCandidate struct {
	Text string
	Page int
}

// TitleCandidate is a title guess ranked by the loader's formatting
// heuristics. Higher score means more title-like.
type TitleCandidate struct {
	Text  string
	Score float64
}

// Info carries document-level metadata.
type Info struct {
	Title string
}

// Document is the loader contract the heuristics consume: paged text plus
// whatever formatting signal the format exposes.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int
	// PageText returns the plain text of a page by 0-based index.
	// Out-of-range indexes return "".
	PageText(page int) string
	// AllText returns the full document text.
	AllText() string
	// HeadingCandidates returns heading-like lines in reading order,
	// page-ascending.
	HeadingCandidates() []HeadingCandidate
	// TitleCandidates returns title guesses sorted best-first.
	TitleCandidates() []TitleCandidate
	// Info returns document metadata.
	Info() Info
	// Close releases any resources held by the document.
	Close() error
}

// Opener turns raw document bytes into a Document.
type Opener interface {
	Open(r io.Reader, filename string) (Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate opener for a filename.
func ForFile(filename string) (Opener, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextOpener{}, nil
	case ".md", ".markdown":
		return &MarkdownOpener{}, nil
	case ".html", ".htm":
		return &HTMLOpener{}, nil
	case ".pdf":
		return &PDFOpener{}, nil
	case ".docx":
		return &DOCXOpener{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
