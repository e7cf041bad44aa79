package main

import (
	"context"
	"io"

	"github.com/awalczak/corpusq"
	"github.com/awalczak/corpusq/bloom"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Loader    corpusq.Loader
	Sectioner corpusq.Sectioner
	Outliner  corpusq.Outliner
	Index     *bloom.Index
	Queries   corpusq.QueryService
	Snapshots corpusq.SnapshotService
	Documents corpusq.DocumentService
	Sections  corpusq.SectionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log operations to stderr"`

	Index     IndexCmd     `cmd:"" help:"Load a corpus and print index statistics"`
	Query     QueryCmd     `cmd:"" help:"Run a keyword query against a corpus"`
	Docs      DocsCmd      `cmd:"" help:"List corpus documents"`
	Snapshots SnapshotsCmd `cmd:"" help:"List persisted corpus snapshots"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Root string `help:"Corpus root directory" env:"CORPUS_ROOT" required:""`
	DB   string `help:"Persist the load as a snapshot to this SQLite database"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Root     string   `help:"Corpus root directory" env:"CORPUS_ROOT" required:""`
	Keywords []string `short:"k" help:"Keywords to match (comma-separated; all must match)"`
	Category string   `short:"c" help:"Restrict results to one category"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Root string `help:"Corpus root directory" env:"CORPUS_ROOT" required:""`
	Toc  bool   `help:"Print each document's heading outline"`
}

// SnapshotsCmd is the "snapshots" subcommand.
type SnapshotsCmd struct {
	DB string `help:"SQLite database path (defaults to CORPUSQ_DB or ~/.corpusq/corpusq.db)"`
}

// loadCorpus loads every document under root and splits each into
// sections.
func loadCorpus(deps *Dependencies, root string) ([]*corpusq.Document, []*corpusq.Section, error) {
	docs, err := deps.Loader.Load(deps.Ctx, root)
	if err != nil {
		return nil, nil, err
	}

	var sections []*corpusq.Section
	for _, doc := range docs {
		ss, err := deps.Sectioner.Split(doc)
		if err != nil {
			return nil, nil, err
		}
		sections = append(sections, ss...)
	}
	return docs, sections, nil
}
