// Package fs provides filesystem-based corpus loading.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/awalczak/corpusq"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Ensure Loader implements corpusq.Loader at compile time.
var _ corpusq.Loader = (*Loader)(nil)

// Loader reads Markdown corpora from a directory tree. The top-level
// subdirectory of each file becomes its category; files directly under
// the root carry an empty category.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .md file under root into a Document. Traversal is
// lexicographic by path, so document order is reproducible across runs.
// The load fails as a whole on the first undecodable file; there is no
// partial-success mode.
func (l *Loader) Load(ctx context.Context, root string) ([]*corpusq.Document, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, corpusq.Errorf(corpusq.ENOTFOUND, "corpus root %q not found", root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat corpus root: %w", err)
	}
	if !info.IsDir() {
		return nil, corpusq.Errorf(corpusq.ENOTFOUND, "corpus root %q is not a directory", root)
	}

	loadedAt := time.Now().UTC()

	var docs []*corpusq.Document
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", path, err)
		}
		if !utf8.Valid(b) {
			return corpusq.Errorf(corpusq.EENCODING, "file %q is not valid UTF-8", path)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		content := string(b)
		docs = append(docs, &corpusq.Document{
			ID:          uuid.New().String(),
			Path:        rel,
			Category:    categoryOf(rel),
			Content:     content,
			ContentHash: hashContent(content),
			LoadedAt:    loadedAt,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// categoryOf returns the top-level directory of a slash-separated
// relative path, or "" for files directly under the root.
func categoryOf(rel string) string {
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		return rel[:i]
	}
	return ""
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
