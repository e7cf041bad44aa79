package sqlite

import (
	"context"
	"strings"

	"github.com/awalczak/corpusq"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ corpusq.SectionService = (*SectionService)(nil)

// SectionService implements corpusq.SectionService using SQLite.
type SectionService struct {
	db *DB
}

// NewSectionService creates a new SectionService.
func NewSectionService(db *DB) *SectionService {
	return &SectionService{db: db}
}

// CreateSections persists sections in a batch, generating IDs when
// empty.
func (s *SectionService) CreateSections(ctx context.Context, sections []*corpusq.Section) error {
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
		if section.SnapshotID == "" {
			return corpusq.Errorf(corpusq.EINVALID, "section snapshot ID required")
		}

		if section.ID == "" {
			section.ID = uuid.New().String()
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO sections (id, snapshot_id, document_id, document_path, category, heading, level, anchor, start_offset, end_offset, body)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, section.ID, section.SnapshotID, section.DocumentID, section.DocumentPath,
			section.Category, section.Heading, section.Level, section.Anchor,
			section.Start, section.End, section.Body)
		if err != nil {
			return err
		}
	}
	return nil
}

// FindSections retrieves sections matching the filter, ordered by
// document path then start offset.
func (s *SectionService) FindSections(ctx context.Context, filter corpusq.SectionFilter) ([]*corpusq.Section, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, snapshot_id, document_id, document_path, category, heading, level, anchor, start_offset, end_offset, body FROM sections WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SnapshotID != nil {
		query.WriteString(" AND snapshot_id = ?")
		args = append(args, *filter.SnapshotID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY document_path, start_offset")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*corpusq.Section
	for rows.Next() {
		var section corpusq.Section

		if err := rows.Scan(&section.ID, &section.SnapshotID, &section.DocumentID,
			&section.DocumentPath, &section.Category, &section.Heading, &section.Level,
			&section.Anchor, &section.Start, &section.End, &section.Body); err != nil {
			return nil, err
		}

		sections = append(sections, &section)
	}

	return sections, rows.Err()
}

// DeleteSectionsBySnapshot removes all sections for a snapshot.
func (s *SectionService) DeleteSectionsBySnapshot(ctx context.Context, snapshotID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sections WHERE snapshot_id = ?", snapshotID)
	return err
}
