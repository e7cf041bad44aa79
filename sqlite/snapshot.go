package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/awalczak/corpusq"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ corpusq.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements corpusq.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot creates a new snapshot record.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *corpusq.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	snap.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, root, document_count, section_count, keyword_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snap.ID, snap.Root, snap.DocumentCount, snap.SectionCount, snap.KeywordCount,
		snap.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*corpusq.Snapshot, error) {
	var snap corpusq.Snapshot
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, root, document_count, section_count, keyword_count, created_at
		FROM snapshots
		WHERE id = ?
	`, id).Scan(&snap.ID, &snap.Root, &snap.DocumentCount, &snap.SectionCount,
		&snap.KeywordCount, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, corpusq.Errorf(corpusq.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}

	if snap.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &snap, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter corpusq.SnapshotFilter) ([]*corpusq.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, root, document_count, section_count, keyword_count, created_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Root != nil {
		query.WriteString(" AND root = ?")
		args = append(args, *filter.Root)
	}

	query.WriteString(" ORDER BY created_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*corpusq.Snapshot
	for rows.Next() {
		var snap corpusq.Snapshot
		var createdAt string

		if err := rows.Scan(&snap.ID, &snap.Root, &snap.DocumentCount, &snap.SectionCount,
			&snap.KeywordCount, &createdAt); err != nil {
			return nil, err
		}

		if snap.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}

	return snaps, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot; documents and sections
// follow via ON DELETE CASCADE.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return corpusq.Errorf(corpusq.ENOTFOUND, "snapshot not found")
	}

	return nil
}
