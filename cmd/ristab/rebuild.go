package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/talmon-lab/ristab/internal/config"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the SQLite cache from rows.jsonl",
	Long: `Rebuild the SQLite query cache from rows.jsonl.

The cache is ephemeral; rows.jsonl is the source of truth. Run this
after editing rows.jsonl by hand or resolving a merge conflict.`,
	RunE: runRebuild,
}

// RebuildResult is the JSON response for the rebuild command.
type RebuildResult struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	count, err := db.RebuildFromJSONL(config.RowsPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "rebuilding database: %v", err)
	}

	if humanOutput {
		fmt.Printf("Rebuilt cache with %d rows\n", count)
	} else {
		outputJSON(RebuildResult{Status: "rebuilt", Rows: count})
	}

	return nil
}
