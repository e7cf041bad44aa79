package bloom

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/awalczak/corpusq"
)

// Ensure Index implements corpusq.QueryService at compile time.
var _ corpusq.QueryService = (*Index)(nil)

// filterFPRate keeps vocabulary false positives rare; a false positive
// only costs one wasted posting-list walk, never a wrong result.
const filterFPRate = 0.01

// Index is the in-memory keyword index. The built state is held behind
// an atomic pointer: Rebuild constructs a complete replacement and
// swaps it in, so a query never observes a partially built index.
type Index struct {
	state atomic.Pointer[indexState]
}

// indexState is one fully built, immutable index generation.
type indexState struct {
	// sections ordered by (DocumentPath, Start); postings refer to
	// positions in this slice.
	sections []*corpusq.Section

	// tokens[i] is the token set of sections[i] (heading + body).
	tokens []map[string]struct{}

	// postings maps each keyword to the ordered positions of sections
	// containing it.
	postings map[string][]int

	// filter answers "keyword definitely absent" without a map lookup
	// per candidate section.
	filter *Filter

	documents int
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	idx := &Index{}
	idx.state.Store(buildState(nil, nil))
	return idx
}

// Rebuild replaces the index contents wholesale from a loaded corpus.
// An empty document set produces an empty index, not an error.
func (idx *Index) Rebuild(docs []*corpusq.Document, sections []*corpusq.Section) {
	idx.state.Store(buildState(docs, sections))
}

func buildState(docs []*corpusq.Document, sections []*corpusq.Section) *indexState {
	ordered := make([]*corpusq.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].DocumentPath != ordered[j].DocumentPath {
			return ordered[i].DocumentPath < ordered[j].DocumentPath
		}
		return ordered[i].Start < ordered[j].Start
	})

	tokens := make([]map[string]struct{}, len(ordered))
	postings := make(map[string][]int)
	for i, s := range ordered {
		set := corpusq.TokenSet(s.Heading + "\n" + s.Body)
		tokens[i] = set
		for tok := range set {
			postings[tok] = append(postings[tok], i)
		}
	}
	// Map iteration order is random; posting lists must not be.
	for _, list := range postings {
		sort.Ints(list)
	}

	n := uint(len(postings))
	if n == 0 {
		n = 1
	}
	filter := NewFilter(n, filterFPRate)
	for tok := range postings {
		filter.Add(tok)
	}

	return &indexState{
		sections:  ordered,
		tokens:    tokens,
		postings:  postings,
		filter:    filter,
		documents: len(docs),
	}
}

// Query returns the sections containing every keyword in q, optionally
// restricted to one category, ordered by document path then start
// offset. No matches is a normal outcome and yields an empty result.
func (idx *Index) Query(ctx context.Context, q corpusq.Query) ([]*corpusq.Section, error) {
	keywords := make([]string, 0, len(q.Keywords))
	for _, kw := range q.Keywords {
		if norm := corpusq.NormalizeKeyword(kw); norm != "" {
			keywords = append(keywords, norm)
		}
	}
	if len(keywords) == 0 {
		return nil, corpusq.Errorf(corpusq.EINVALID, "at least one keyword required")
	}

	st := idx.state.Load()

	// Any keyword outside the vocabulary means no section can match.
	for _, kw := range keywords {
		if !st.filter.Test(kw) {
			return nil, nil
		}
	}

	candidates, ok := st.postings[keywords[0]]
	if !ok {
		return nil, nil
	}

	var results []*corpusq.Section
	for _, i := range candidates {
		s := st.sections[i]
		if q.Category != nil && s.Category != *q.Category {
			continue
		}
		if !containsAll(st.tokens[i], keywords[1:]) {
			continue
		}
		results = append(results, s)
	}
	return results, nil
}

// Stats returns statistics for the current index.
func (idx *Index) Stats() corpusq.IndexStats {
	st := idx.state.Load()
	return corpusq.IndexStats{
		Documents: st.documents,
		Sections:  len(st.sections),
		Keywords:  len(st.postings),
	}
}

func containsAll(set map[string]struct{}, keywords []string) bool {
	for _, kw := range keywords {
		if _, ok := set[kw]; !ok {
			return false
		}
	}
	return true
}
