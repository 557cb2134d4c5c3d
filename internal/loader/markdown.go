package loader

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownOpener handles Markdown files using goldmark. ATX/setext headings
// become heading candidates; the whole file is page 1.
type MarkdownOpener struct{}

func (p *MarkdownOpener) Open(r io.Reader, filename string) (Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &document{}
	var body strings.Builder

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := normalizeLine(string(node.Text(src)))
			if title == "" {
				continue
			}
			if body.Len() > 0 {
				body.WriteString("\n")
			}
			body.WriteString(title)
			doc.candidates = append(doc.candidates, HeadingCandidate{Text: title, Page: 1})
			if node.Level == 1 {
				doc.titles = append(doc.titles, TitleCandidate{Text: title, Score: 1})
			}
		default:
			t := blockText(n, src)
			if t == "" {
				continue
			}
			if body.Len() > 0 {
				body.WriteString("\n")
			}
			body.WriteString(t)
		}
	}

	doc.pages = []string{body.String()}
	return doc, nil
}

// blockText gets the text content of a goldmark AST node. Blocks with
// source segments use them directly; container nodes recurse.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
			continue
		}
		if s := blockText(c, src); s != "" {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(s)
		}
	}
	return strings.TrimSpace(buf.String())
}
