package corpusq

import (
	"context"
	"time"
)

// Document represents one loaded Markdown file plus its inferred
// category. Documents are immutable once loaded; a reload produces a
// fresh set of records.
type Document struct {
	ID          string    `json:"id"`
	SnapshotID  string    `json:"snapshotId,omitempty"`
	Path        string    `json:"path"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	return nil
}

// Loader reads a corpus from a root directory and produces one Document
// per Markdown file, ordered lexicographically by path.
//
// Returns ENOTFOUND if the root does not exist or is not a directory.
// Returns EENCODING, naming the offending path, if any file is not
// valid UTF-8; the load fails as a whole rather than skipping files,
// because a silently partial corpus would produce misleading results.
type Loader interface {
	Load(ctx context.Context, root string) ([]*Document, error)
}

// DocumentService represents a service for persisted documents.
type DocumentService interface {
	// CreateDocuments persists documents in a batch. Documents must
	// carry a SnapshotID; IDs are generated when empty.
	CreateDocuments(ctx context.Context, docs []*Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, ordered
	// by path.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocumentsBySnapshot removes all documents for a snapshot.
	DeleteDocumentsBySnapshot(ctx context.Context, snapshotID string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID         *string `json:"id"`
	SnapshotID *string `json:"snapshotId"`
	Category   *string `json:"category"`
	Path       *string `json:"path"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
