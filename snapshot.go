package corpusq

import (
	"context"
	"time"
)

// Snapshot records one persisted load of a corpus: where it was loaded
// from and what the index looked like. The documents and sections
// themselves are stored alongside it.
type Snapshot struct {
	ID            string    `json:"id"`
	Root          string    `json:"root"`
	DocumentCount int       `json:"documentCount"`
	SectionCount  int       `json:"sectionCount"`
	KeywordCount  int       `json:"keywordCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Root == "" {
		return Errorf(EINVALID, "snapshot root required")
	}
	return nil
}

// SnapshotService represents a service for managing corpus snapshots.
type SnapshotService interface {
	// CreateSnapshot creates a new snapshot record.
	CreateSnapshot(ctx context.Context, snap *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest
	// first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot and all associated
	// documents and sections.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID   *string `json:"id"`
	Root *string `json:"root"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
