package mock

import (
	"github.com/awalczak/corpusq"
)

var (
	_ corpusq.Sectioner = (*Sectioner)(nil)
	_ corpusq.Outliner  = (*Outliner)(nil)
)

// Sectioner is a mock implementation of corpusq.Sectioner.
type Sectioner struct {
	SplitFn func(doc *corpusq.Document) ([]*corpusq.Section, error)
}

func (s *Sectioner) Split(doc *corpusq.Document) ([]*corpusq.Section, error) {
	return s.SplitFn(doc)
}

// Outliner is a mock implementation of corpusq.Outliner.
type Outliner struct {
	OutlineFn func(doc *corpusq.Document) ([]corpusq.OutlineEntry, error)
}

func (o *Outliner) Outline(doc *corpusq.Document) ([]corpusq.OutlineEntry, error) {
	return o.OutlineFn(doc)
}
