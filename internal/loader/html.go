package loader

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLOpener handles HTML files. h1-h6 elements become heading candidates,
// the <title> element supplies the metadata title, and the rendered body is
// page 1.
type HTMLOpener struct{}

func (p *HTMLOpener) Open(r io.Reader, filename string) (Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &document{}
	doc.info.Title = normalizeLine(findTitle(root))

	var body strings.Builder
	appendLine := func(s string) {
		if s == "" {
			return
		}
		if body.Len() > 0 {
			body.WriteString("\n")
		}
		body.WriteString(s)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := htmlHeadingLevel(n.Data); level > 0 {
				text := normalizeLine(textContent(n))
				appendLine(text)
				if text != "" {
					doc.candidates = append(doc.candidates, HeadingCandidate{Text: text, Page: 1})
					if level == 1 {
						doc.titles = append(doc.titles, TitleCandidate{Text: text, Score: 1})
					}
				}
				return // Text already extracted, don't recurse.
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				appendLine(normalizeLine(textContent(n)))
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if b := findBody(root); b != nil {
		walk(b)
	} else {
		walk(root)
	}

	doc.pages = []string{body.String()}
	return doc, nil
}

func htmlHeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
