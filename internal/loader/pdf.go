package loader

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFOpener handles PDF files. Font sizes and positions drive the heading
// and title candidate extraction; when the Go library cannot read a file it
// can fall back to pdftotext for plain text (no formatting, so no candidates).
type PDFOpener struct {
	FallbackPdftotext bool
}

func (p *PDFOpener) Open(r io.Reader, filename string) (Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docsift-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	doc, err := readPDF(tmpPath)
	if err != nil && p.FallbackPdftotext {
		doc, err = readPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return doc, nil
}

// pdfLine is one assembled text row with the largest font size seen in it.
type pdfLine struct {
	size float64
	text string
}

func readPDF(path string) (*document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc := &document{}

	var pageLines [][]pdfLine
	sizeWeight := make(map[float64]int)

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.pages = append(doc.pages, "")
			pageLines = append(pageLines, nil)
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		doc.pages = append(doc.pages, text)

		lines := assembleLines(page.Content().Text)
		pageLines = append(pageLines, lines)
		for _, ln := range lines {
			sizeWeight[ln.size] += len(ln.text)
		}
	}

	body := modalFontSize(sizeWeight)

	// Lines set larger than the body font are heading-like.
	for pageIdx, lines := range pageLines {
		for _, ln := range lines {
			if ln.size > body+0.5 {
				doc.candidates = append(doc.candidates, HeadingCandidate{
					Text: ln.text,
					Page: pageIdx + 1,
				})
			}
		}
	}

	if len(pageLines) > 0 {
		doc.titles = titleGuesses(pageLines[0], body)
	}

	doc.info.Title = strings.TrimSpace(reader.Trailer().Key("Info").Key("Title").Text())

	return doc, nil
}

// assembleLines groups positioned text fragments into visual rows.
// PDF coordinates have the origin at the bottom-left, so rows are emitted
// top of page first.
func assembleLines(texts []pdflib.Text) []pdfLine {
	rows := make(map[int][]pdflib.Text)
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		y := int(math.Round(t.Y))
		rows[y] = append(rows[y], t)
	}

	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	var lines []pdfLine
	for _, y := range ys {
		frags := rows[y]
		sort.SliceStable(frags, func(i, j int) bool { return frags[i].X < frags[j].X })

		var sb strings.Builder
		size := 0.0
		for _, fr := range frags {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fr.S)
			if fr.FontSize > size {
				size = fr.FontSize
			}
		}
		text := normalizeLine(sb.String())
		if text == "" {
			continue
		}
		// Half-point rounding keeps nearly-equal sizes in one bucket.
		lines = append(lines, pdfLine{size: math.Round(size*2) / 2, text: text})
	}
	return lines
}

// modalFontSize returns the font size carrying the most characters, which
// approximates the body text size. Ties go to the smaller size.
func modalFontSize(weights map[float64]int) float64 {
	best, bestWeight := 0.0, -1
	for size, w := range weights {
		if w > bestWeight || (w == bestWeight && size < best) {
			best, bestWeight = size, w
		}
	}
	return best
}

// titleGuesses ranks first-page lines set larger than the body font,
// biggest first, ties broken by reading order.
func titleGuesses(lines []pdfLine, body float64) []TitleCandidate {
	var guesses []TitleCandidate
	for _, ln := range lines {
		if ln.size > body+0.5 {
			guesses = append(guesses, TitleCandidate{Text: ln.text, Score: ln.size})
		}
	}
	sort.SliceStable(guesses, func(i, j int) bool { return guesses[i].Score > guesses[j].Score })
	if len(guesses) > 5 {
		guesses = guesses[:5]
	}
	return guesses
}

// readPdftotext extracts plain text only; page breaks come from form feeds.
func readPdftotext(path string) (*document, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	doc := &document{}
	for _, page := range strings.Split(string(out), "\f") {
		doc.pages = append(doc.pages, page)
	}
	return doc, nil
}
