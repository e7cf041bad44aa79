package mock

import (
	"context"

	"github.com/awalczak/corpusq"
)

var (
	_ corpusq.SnapshotService = (*SnapshotService)(nil)
	_ corpusq.DocumentService = (*DocumentService)(nil)
	_ corpusq.SectionService  = (*SectionService)(nil)
)

// SnapshotService is a mock implementation of corpusq.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, snap *corpusq.Snapshot) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*corpusq.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter corpusq.SnapshotFilter) ([]*corpusq.Snapshot, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *corpusq.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*corpusq.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter corpusq.SnapshotFilter) ([]*corpusq.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}

// DocumentService is a mock implementation of corpusq.DocumentService.
type DocumentService struct {
	CreateDocumentsFn           func(ctx context.Context, docs []*corpusq.Document) error
	FindDocumentByIDFn          func(ctx context.Context, id string) (*corpusq.Document, error)
	FindDocumentsFn             func(ctx context.Context, filter corpusq.DocumentFilter) ([]*corpusq.Document, error)
	DeleteDocumentsBySnapshotFn func(ctx context.Context, snapshotID string) error
}

func (s *DocumentService) CreateDocuments(ctx context.Context, docs []*corpusq.Document) error {
	return s.CreateDocumentsFn(ctx, docs)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*corpusq.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter corpusq.DocumentFilter) ([]*corpusq.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocumentsBySnapshot(ctx context.Context, snapshotID string) error {
	return s.DeleteDocumentsBySnapshotFn(ctx, snapshotID)
}

// SectionService is a mock implementation of corpusq.SectionService.
type SectionService struct {
	CreateSectionsFn           func(ctx context.Context, sections []*corpusq.Section) error
	FindSectionsFn             func(ctx context.Context, filter corpusq.SectionFilter) ([]*corpusq.Section, error)
	DeleteSectionsBySnapshotFn func(ctx context.Context, snapshotID string) error
}

func (s *SectionService) CreateSections(ctx context.Context, sections []*corpusq.Section) error {
	return s.CreateSectionsFn(ctx, sections)
}

func (s *SectionService) FindSections(ctx context.Context, filter corpusq.SectionFilter) ([]*corpusq.Section, error) {
	return s.FindSectionsFn(ctx, filter)
}

func (s *SectionService) DeleteSectionsBySnapshot(ctx context.Context, snapshotID string) error {
	return s.DeleteSectionsBySnapshotFn(ctx, snapshotID)
}
