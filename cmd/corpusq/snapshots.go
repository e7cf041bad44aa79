package main

import (
	"fmt"
	"time"

	"github.com/awalczak/corpusq"
)

// Run executes the snapshots command.
func (c *SnapshotsCmd) Run(deps *Dependencies) error {
	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, corpusq.SnapshotFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpusq.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'corpusq index --db <path>' to create one.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d docs  %d sections  %d keywords  %s\n",
			s.ID, s.Root, s.DocumentCount, s.SectionCount, s.KeywordCount,
			s.CreatedAt.Format(time.RFC3339))
	}

	return nil
}
