package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/awalczak/corpusq"
	"github.com/awalczak/corpusq/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file under dir, creating parent directories.
func writeFile(t *testing.T, dir, rel string, content []byte) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads documents with categories from subdirectories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "startup/openers.md", []byte("# Openers\n\nLead with mission alignment.\n"))
		writeFile(t, dir, "enterprise/structure.md", []byte("# Structure\n\nUse reverse-chronological order.\n"))

		docs, err := fs.NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, docs, 2)

		assert.Equal(t, "enterprise/structure.md", docs[0].Path)
		assert.Equal(t, "enterprise", docs[0].Category)
		assert.Equal(t, "startup/openers.md", docs[1].Path)
		assert.Equal(t, "startup", docs[1].Category)
	})

	t.Run("orders documents lexicographically by path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "faang/b.md", []byte("b"))
		writeFile(t, dir, "faang/a.md", []byte("a"))
		writeFile(t, dir, "enterprise/z.md", []byte("z"))

		docs, err := fs.NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, docs, 3)

		assert.Equal(t, "enterprise/z.md", docs[0].Path)
		assert.Equal(t, "faang/a.md", docs[1].Path)
		assert.Equal(t, "faang/b.md", docs[2].Path)
	})

	t.Run("files directly under root carry empty category", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "readme.md", []byte("top-level notes"))

		docs, err := fs.NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, docs, 1)

		assert.Equal(t, "readme.md", docs[0].Path)
		assert.Empty(t, docs[0].Category)
	})

	t.Run("skips non-markdown files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "startup/openers.md", []byte("# Openers"))
		writeFile(t, dir, "startup/notes.txt", []byte("ignored"))
		writeFile(t, dir, "startup/.gitignore", []byte("ignored"))

		docs, err := fs.NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "startup/openers.md", docs[0].Path)
	})

	t.Run("assigns IDs, hashes and load time", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "startup/openers.md", []byte("# Openers"))

		docs, err := fs.NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, docs, 1)

		assert.NotEmpty(t, docs[0].ID)
		assert.NotEmpty(t, docs[0].ContentHash)
		assert.False(t, docs[0].LoadedAt.IsZero())
		assert.Equal(t, "# Openers", docs[0].Content)
	})

	t.Run("identical content hashes identically", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a/same.md", []byte("same content"))
		writeFile(t, dir, "b/same.md", []byte("same content"))

		docs, err := fs.NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, docs[0].ContentHash, docs[1].ContentHash)
	})

	t.Run("returns ENOTFOUND for missing root", func(t *testing.T) {
		t.Parallel()

		docs, err := fs.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
		assert.Equal(t, corpusq.ENOTFOUND, corpusq.ErrorCode(err))
		assert.Nil(t, docs)
	})

	t.Run("returns ENOTFOUND when root is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "file.md", []byte("x"))

		_, err := fs.NewLoader().Load(context.Background(), filepath.Join(dir, "file.md"))

		require.Error(t, err)
		assert.Equal(t, corpusq.ENOTFOUND, corpusq.ErrorCode(err))
	})

	t.Run("fails whole load with EENCODING on invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "startup/good.md", []byte("# Fine"))
		writeFile(t, dir, "startup/zz-bad.md", []byte{0xff, 0xfe, 0xfd})

		docs, err := fs.NewLoader().Load(context.Background(), dir)

		require.Error(t, err)
		assert.Equal(t, corpusq.EENCODING, corpusq.ErrorCode(err))
		assert.Contains(t, corpusq.ErrorMessage(err), "zz-bad.md")
		assert.Nil(t, docs)
	})

	t.Run("empty root yields no documents", func(t *testing.T) {
		t.Parallel()

		docs, err := fs.NewLoader().Load(context.Background(), t.TempDir())

		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}
