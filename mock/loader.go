package mock

import (
	"context"

	"github.com/awalczak/corpusq"
)

var _ corpusq.Loader = (*Loader)(nil)

// Loader is a mock implementation of corpusq.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, root string) ([]*corpusq.Document, error)
}

func (l *Loader) Load(ctx context.Context, root string) ([]*corpusq.Document, error) {
	return l.LoadFn(ctx, root)
}
