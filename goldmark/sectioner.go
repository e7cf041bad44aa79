// Package goldmark provides Markdown section splitting and outlines on
// the goldmark parser.
package goldmark

import (
	"path"
	"strconv"

	"github.com/awalczak/corpusq"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Ensure Sectioner implements the domain interfaces at compile time.
var (
	_ corpusq.Sectioner = (*Sectioner)(nil)
	_ corpusq.Outliner  = (*Sectioner)(nil)
)

// Sectioner splits documents into heading-delimited sections using the
// goldmark AST, so a # inside a fenced code block never starts a
// section. Offsets are exact bytes into the document content.
type Sectioner struct {
	md goldmark.Markdown
}

// NewSectioner creates a new Sectioner.
func NewSectioner() *Sectioner {
	return &Sectioner{
		md: goldmark.New(
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// mark is one heading boundary found in the source.
type mark struct {
	level     int
	title     string
	lineStart int // offset of the heading line's first byte
	bodyStart int // offset of the first byte after the heading line
}

// Split converts a document into its ordered sections. A section's body
// runs from the line after its heading to the line of the next heading
// of equal or higher level, or end of document, so subsection text is
// part of its parent's body as well as its own. Content before the
// first heading (or a document with no headings at all) becomes a
// level-0 section named after the file.
func (s *Sectioner) Split(doc *corpusq.Document) ([]*corpusq.Section, error) {
	src := []byte(doc.Content)
	root := s.md.Parser().Parse(text.NewReader(src))

	var marks []mark
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		// A heading with no text carries no source segment; treat it
		// as body text.
		if h.Lines().Len() == 0 {
			continue
		}

		first := h.Lines().At(0)
		last := h.Lines().At(h.Lines().Len() - 1)
		lineStart := lineStartBefore(src, first.Start)
		bodyStart := lineEndAfter(src, last.Stop)

		// Setext headings don't start with '#' (ATX markers may be
		// indented up to three spaces); their underline is part of the
		// heading, not the body.
		i := lineStart
		for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
			i++
		}
		if i < len(src) && src[i] != '#' {
			bodyStart = lineEndAfter(src, bodyStart)
		}

		marks = append(marks, mark{
			level:     h.Level,
			title:     string(h.Text(src)),
			lineStart: lineStart,
			bodyStart: bodyStart,
		})
	}

	anchorCounts := make(map[string]int)
	anchorFor := func(title string) string {
		base := corpusq.GenerateAnchor(title)
		anchor := base
		if count, exists := anchorCounts[base]; exists {
			anchor = base + "-" + strconv.Itoa(count)
			anchorCounts[base]++
		} else {
			anchorCounts[base] = 1
		}
		return anchor
	}

	newSection := func(heading string, level, start, end int) *corpusq.Section {
		return &corpusq.Section{
			DocumentID:   doc.ID,
			DocumentPath: doc.Path,
			Category:     doc.Category,
			Heading:      heading,
			Level:        level,
			Anchor:       anchorFor(heading),
			Start:        start,
			End:          end,
			Body:         doc.Content[start:end],
		}
	}

	var sections []*corpusq.Section

	// Preamble, or the whole document when it has no headings.
	firstBoundary := len(src)
	if len(marks) > 0 {
		firstBoundary = marks[0].lineStart
	}
	if len(marks) == 0 || hasText(src[:firstBoundary]) {
		sections = append(sections, newSection(path.Base(doc.Path), 0, 0, firstBoundary))
	}

	for i, m := range marks {
		end := len(src)
		for _, next := range marks[i+1:] {
			if next.level <= m.level {
				end = next.lineStart
				break
			}
		}
		sections = append(sections, newSection(m.title, m.level, m.bodyStart, end))
	}

	return sections, nil
}

// lineStartBefore returns the offset of the first byte of the line
// containing off.
func lineStartBefore(src []byte, off int) int {
	for off > 0 && src[off-1] != '\n' {
		off--
	}
	return off
}

// lineEndAfter returns the offset just past the newline that terminates
// the line containing off, or len(src) for the last line.
func lineEndAfter(src []byte, off int) int {
	for off < len(src) && src[off] != '\n' {
		off++
	}
	if off < len(src) {
		off++
	}
	return off
}

// hasText reports whether b contains any non-whitespace byte.
func hasText(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			return true
		}
	}
	return false
}
