package corpusq

import (
	"context"
	"strings"
	"unicode"
)

// Section represents a heading-delimited span of text within a
// Document. Start and End are byte offsets delimiting Body within the
// owning document's Content, so Content[Start:End] == Body always
// holds. DocumentPath and Category are denormalized from the owning
// document for efficient filtering.
//
// A document with no headings yields exactly one Section at Level 0
// whose Heading is the file's base name and whose Body spans the whole
// content. Content preceding the first heading is reported the same
// way.
type Section struct {
	ID           string `json:"id"`
	SnapshotID   string `json:"snapshotId,omitempty"`
	DocumentID   string `json:"documentId"`
	DocumentPath string `json:"documentPath"`
	Category     string `json:"category"`
	Heading      string `json:"heading"`
	Level        int    `json:"level"`
	Anchor       string `json:"anchor"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Body         string `json:"body"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.DocumentID == "" {
		return Errorf(EINVALID, "section document ID required")
	}
	if s.DocumentPath == "" {
		return Errorf(EINVALID, "section document path required")
	}
	if s.Start < 0 || s.End < s.Start {
		return Errorf(EINVALID, "section offsets out of order")
	}
	return nil
}

// Excerpt returns the first maxRunes runes of the section body with
// whitespace runs collapsed to single spaces. Longer bodies are
// truncated with a trailing ellipsis.
func (s *Section) Excerpt(maxRunes int) string {
	collapsed := strings.Join(strings.Fields(s.Body), " ")
	runes := []rune(collapsed)
	if len(runes) <= maxRunes {
		return collapsed
	}
	return string(runes[:maxRunes]) + "..."
}

// Sectioner splits a document into its ordered sequence of sections.
// Splitting is deterministic: the same content always yields identical
// section boundaries.
type Sectioner interface {
	Split(doc *Document) ([]*Section, error)
}

// OutlineEntry is one heading in a document's outline.
type OutlineEntry struct {
	Heading string `json:"heading"`
	Anchor  string `json:"anchor"`
	Level   int    `json:"level"`
}

// Outliner produces a document's heading outline.
type Outliner interface {
	Outline(doc *Document) ([]OutlineEntry, error)
}

// SectionService represents a service for persisted sections.
type SectionService interface {
	// CreateSections persists sections in a batch. Sections must carry
	// a SnapshotID; IDs are generated when empty.
	CreateSections(ctx context.Context, sections []*Section) error

	// FindSections retrieves sections matching the filter, ordered by
	// document path then start offset.
	FindSections(ctx context.Context, filter SectionFilter) ([]*Section, error)

	// DeleteSectionsBySnapshot removes all sections for a snapshot.
	DeleteSectionsBySnapshot(ctx context.Context, snapshotID string) error
}

// SectionFilter represents a filter for FindSections.
type SectionFilter struct {
	ID         *string `json:"id"`
	SnapshotID *string `json:"snapshotId"`
	DocumentID *string `json:"documentId"`
	Category   *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// GenerateAnchor creates a URL-safe anchor from a heading title.
// Converts to lowercase, replaces spaces with hyphens, removes special
// chars. Duplicate handling is the caller's concern since uniqueness is
// scoped to a document.
func GenerateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
