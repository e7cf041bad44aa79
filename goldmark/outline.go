package goldmark

import (
	"fmt"

	"github.com/awalczak/corpusq"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

// Outline returns the document's heading outline as a flat list. Levels
// reflect nesting depth in the outline tree rather than raw heading
// levels, so a document whose first heading is an H2 still outlines
// from level 1.
func (s *Sectioner) Outline(doc *corpusq.Document) ([]corpusq.OutlineEntry, error) {
	src := []byte(doc.Content)
	root := s.md.Parser().Parse(text.NewReader(src))

	tree, err := toc.Inspect(root, src, toc.Compact(true))
	if err != nil {
		return nil, fmt.Errorf("inspect outline: %w", err)
	}

	var entries []corpusq.OutlineEntry
	flattenItems(tree.Items, 1, &entries)
	return entries, nil
}

// flattenItems walks outline items depth-first, recording depth as the
// entry level.
func flattenItems(items toc.Items, depth int, out *[]corpusq.OutlineEntry) {
	for _, item := range items {
		*out = append(*out, corpusq.OutlineEntry{
			Heading: string(item.Title),
			Anchor:  string(item.ID),
			Level:   depth,
		})
		flattenItems(item.Items, depth+1, out)
	}
}
