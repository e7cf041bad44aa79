package main

import (
	"fmt"

	"github.com/awalczak/corpusq"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	docs, err := deps.Loader.Load(deps.Ctx, c.Root)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	for _, doc := range docs {
		sections, err := deps.Sectioner.Split(doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "%s  %s  %d sections\n",
			doc.Path, displayCategory(doc.Category), len(sections))

		if !c.Toc {
			continue
		}

		entries, err := deps.Outliner.Outline(doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(deps.Stdout, "  %s- %s (#%s)\n", indentFor(e.Level), e.Heading, e.Anchor)
		}
	}

	return nil
}
