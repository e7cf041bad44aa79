package main

import (
	"fmt"

	"github.com/awalczak/corpusq"
)

// excerptRunes bounds the body preview printed per match.
const excerptRunes = 200

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	docs, sections, err := loadCorpus(deps, c.Root)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
		return err
	}

	deps.Index.Rebuild(docs, sections)

	q := corpusq.Query{Keywords: c.Keywords}
	if c.Category != "" {
		q.Category = &c.Category
	}

	results, err := deps.Queries.Query(deps.Ctx, q)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
		return err
	}

	// Zero matches is a normal outcome, not an error.
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	for _, s := range results {
		fmt.Fprintf(deps.Stdout, "%s#%s: %s\n", s.DocumentPath, s.Anchor, s.Excerpt(excerptRunes))
	}
	return nil
}
