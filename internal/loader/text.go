package loader

import (
	"bufio"
	"io"
	"strings"
)

// TextOpener handles plain text files. There is no formatting signal, so it
// emits no heading or title candidates; documents of this kind rely on the
// downstream label-scan fallback. Form feeds act as page breaks.
type TextOpener struct{}

func (p *TextOpener) Open(r io.Reader, filename string) (Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pages []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		for {
			idx := strings.IndexByte(line, '\f')
			if idx < 0 {
				break
			}
			current.WriteString(line[:idx])
			pages = append(pages, current.String())
			current.Reset()
			line = line[idx+1:]
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	pages = append(pages, current.String())

	return &document{pages: pages}, nil
}
