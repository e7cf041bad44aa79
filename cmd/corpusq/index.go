package main

import (
	"fmt"

	"github.com/awalczak/corpusq"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	docs, sections, err := loadCorpus(deps, c.Root)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
		return err
	}

	deps.Index.Rebuild(docs, sections)
	stats := deps.Queries.Stats()

	fmt.Fprintf(deps.Stdout, "Indexed %d documents, %d sections, %d keywords\n",
		stats.Documents, stats.Sections, stats.Keywords)

	if c.DB == "" {
		return nil
	}

	snap := &corpusq.Snapshot{
		Root:          c.Root,
		DocumentCount: stats.Documents,
		SectionCount:  stats.Sections,
		KeywordCount:  stats.Keywords,
	}
	if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snap); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
		return err
	}

	for _, doc := range docs {
		doc.SnapshotID = snap.ID
	}
	for _, section := range sections {
		section.SnapshotID = snap.ID
	}

	if err := deps.Documents.CreateDocuments(deps.Ctx, docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
		return err
	}
	if err := deps.Sections.CreateSections(deps.Ctx, sections); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved snapshot %s to %s\n", snap.ID, c.DB)
	return nil
}
