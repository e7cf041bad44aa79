package sqlite_test

import (
	"context"
	"testing"

	"github.com/awalczak/corpusq"
	"github.com/awalczak/corpusq/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSnapshot(t *testing.T, db *sqlite.DB, root string) *corpusq.Snapshot {
	t.Helper()
	snap := &corpusq.Snapshot{Root: root, DocumentCount: 2, SectionCount: 5, KeywordCount: 40}
	require.NoError(t, sqlite.NewSnapshotService(db).CreateSnapshot(context.Background(), snap))
	return snap
}

func TestSnapshotService_CreateSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("creates snapshot with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		snap := createTestSnapshot(t, db, "/data/inputs")

		assert.NotEmpty(t, snap.ID)
		assert.False(t, snap.CreatedAt.IsZero())
	})

	t.Run("returns EINVALID for missing root", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		err := svc.CreateSnapshot(context.Background(), &corpusq.Snapshot{})
		assert.Equal(t, corpusq.EINVALID, corpusq.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshotByID(t *testing.T) {
	t.Parallel()

	t.Run("returns snapshot when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		created := createTestSnapshot(t, db, "/data/inputs")

		found, err := svc.FindSnapshotByID(context.Background(), created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "/data/inputs", found.Root)
		assert.Equal(t, 2, found.DocumentCount)
		assert.Equal(t, 5, found.SectionCount)
		assert.Equal(t, 40, found.KeywordCount)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		_, err := svc.FindSnapshotByID(context.Background(), "missing")
		assert.Equal(t, corpusq.ENOTFOUND, corpusq.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshots(t *testing.T) {
	t.Parallel()

	t.Run("filters by root", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		createTestSnapshot(t, db, "/corpus-a")
		createTestSnapshot(t, db, "/corpus-b")

		root := "/corpus-a"
		snaps, err := svc.FindSnapshots(context.Background(), corpusq.SnapshotFilter{Root: &root})
		require.NoError(t, err)
		require.Len(t, snaps, 1)
		assert.Equal(t, "/corpus-a", snaps[0].Root)
	})

	t.Run("empty database yields no snapshots", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		snaps, err := svc.FindSnapshots(context.Background(), corpusq.SnapshotFilter{})
		require.NoError(t, err)
		assert.Empty(t, snaps)
	})
}

func TestSnapshotService_DeleteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("deletes snapshot and cascades to documents and sections", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		svc := sqlite.NewSnapshotService(db)
		snap := createTestSnapshot(t, db, "/data/inputs")

		doc := &corpusq.Document{
			SnapshotID: snap.ID,
			Path:       "startup/openers.md",
			Category:   "startup",
			Content:    "# Openers\n\nLead with mission alignment.\n",
		}
		require.NoError(t, sqlite.NewDocumentService(db).CreateDocuments(ctx, []*corpusq.Document{doc}))
		require.NoError(t, sqlite.NewSectionService(db).CreateSections(ctx, []*corpusq.Section{{
			SnapshotID:   snap.ID,
			DocumentID:   doc.ID,
			DocumentPath: doc.Path,
			Category:     doc.Category,
			Heading:      "Openers",
			Level:        1,
			Anchor:       "openers",
			Start:        10,
			End:          len(doc.Content),
			Body:         doc.Content[10:],
		}}))

		require.NoError(t, svc.DeleteSnapshot(ctx, snap.ID))

		_, err := svc.FindSnapshotByID(ctx, snap.ID)
		assert.Equal(t, corpusq.ENOTFOUND, corpusq.ErrorCode(err))

		docs, err := sqlite.NewDocumentService(db).FindDocuments(ctx, corpusq.DocumentFilter{SnapshotID: &snap.ID})
		require.NoError(t, err)
		assert.Empty(t, docs)

		sections, err := sqlite.NewSectionService(db).FindSections(ctx, corpusq.SectionFilter{SnapshotID: &snap.ID})
		require.NoError(t, err)
		assert.Empty(t, sections)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		err := sqlite.NewSnapshotService(db).DeleteSnapshot(context.Background(), "missing")
		assert.Equal(t, corpusq.ENOTFOUND, corpusq.ErrorCode(err))
	})
}
