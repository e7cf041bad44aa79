package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/awalczak/corpusq"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ corpusq.DocumentService = (*DocumentService)(nil)

// DocumentService implements corpusq.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// CreateDocuments persists documents in a batch. Loader-assigned IDs
// are kept so sections keep referring to their documents; missing IDs,
// hashes and timestamps are filled in.
func (s *DocumentService) CreateDocuments(ctx context.Context, docs []*corpusq.Document) error {
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return err
		}
		if doc.SnapshotID == "" {
			return corpusq.Errorf(corpusq.EINVALID, "document snapshot ID required")
		}

		if doc.ID == "" {
			doc.ID = uuid.New().String()
		}
		if doc.ContentHash == "" {
			doc.ContentHash = hashContent(doc.Content)
		}
		if doc.LoadedAt.IsZero() {
			doc.LoadedAt = time.Now().UTC()
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO documents (id, snapshot_id, path, category, content, content_hash, loaded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, doc.SnapshotID, doc.Path, doc.Category, doc.Content, doc.ContentHash,
			doc.LoadedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return nil
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*corpusq.Document, error) {
	var doc corpusq.Document
	var loadedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, snapshot_id, path, category, content, content_hash, loaded_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.SnapshotID, &doc.Path, &doc.Category, &doc.Content,
		&doc.ContentHash, &loadedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, corpusq.Errorf(corpusq.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if doc.LoadedAt, err = parseRFC3339(loadedAt, "loaded_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter, ordered by path.
func (s *DocumentService) FindDocuments(ctx context.Context, filter corpusq.DocumentFilter) ([]*corpusq.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, snapshot_id, path, category, content, content_hash, loaded_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SnapshotID != nil {
		query.WriteString(" AND snapshot_id = ?")
		args = append(args, *filter.SnapshotID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}

	query.WriteString(" ORDER BY path")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*corpusq.Document
	for rows.Next() {
		var doc corpusq.Document
		var loadedAt string

		if err := rows.Scan(&doc.ID, &doc.SnapshotID, &doc.Path, &doc.Category, &doc.Content,
			&doc.ContentHash, &loadedAt); err != nil {
			return nil, err
		}

		if doc.LoadedAt, err = parseRFC3339(loadedAt, "loaded_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocumentsBySnapshot removes all documents for a snapshot.
func (s *DocumentService) DeleteDocumentsBySnapshot(ctx context.Context, snapshotID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE snapshot_id = ?", snapshotID)
	return err
}
