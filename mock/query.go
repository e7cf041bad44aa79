package mock

import (
	"context"

	"github.com/awalczak/corpusq"
)

var _ corpusq.QueryService = (*QueryService)(nil)

// QueryService is a mock implementation of corpusq.QueryService.
type QueryService struct {
	QueryFn func(ctx context.Context, q corpusq.Query) ([]*corpusq.Section, error)
	StatsFn func() corpusq.IndexStats
}

func (s *QueryService) Query(ctx context.Context, q corpusq.Query) ([]*corpusq.Section, error) {
	return s.QueryFn(ctx, q)
}

func (s *QueryService) Stats() corpusq.IndexStats {
	return s.StatsFn()
}
