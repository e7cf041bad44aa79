package corpusq

import "context"

// Query represents one lookup against a built index.
type Query struct {
	// Category, when set, restricts results to sections whose document
	// category equals it.
	Category *string `json:"category"`

	// Keywords must all be present in a section's heading+body tokens
	// for the section to match. Conjunctive matching is deliberate:
	// the corpus is small and disjunctive results would be too broad
	// to be useful. Keywords are normalized before matching.
	Keywords []string `json:"keywords"`
}

// IndexStats describes a built index.
type IndexStats struct {
	Documents int `json:"documents"`
	Sections  int `json:"sections"`
	Keywords  int `json:"keywords"`
}

// QueryService answers lookup requests against a built index. Results
// are ordered by document path then section start offset; no relevance
// scoring exists. An empty result is a normal outcome, not an error.
type QueryService interface {
	// Query returns the sections matching q.
	// Returns EINVALID if q contains no usable keywords.
	Query(ctx context.Context, q Query) ([]*Section, error)

	// Stats returns statistics for the current index.
	Stats() IndexStats
}
