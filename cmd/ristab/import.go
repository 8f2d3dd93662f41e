package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/talmon-lab/ristab/internal/batch"
	"github.com/talmon-lab/ristab/internal/config"
	"github.com/talmon-lab/ristab/internal/row"
	"github.com/talmon-lab/ristab/internal/storage"
)

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Parse and report without writing anything")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import RIS files into the repository",
	Long: `Import RIS files into the repository.

Extracted rows are merged with the stored table under the configured
deduplication policy, appended to rows.jsonl, and the query cache is
rebuilt. Rows already present are counted as duplicates and not stored
again.

Examples:
  ristab import refs.ris
  ristab import batch1.ris batch2.ris
  ristab import refs.ris --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

// ImportResult is the JSON response for the import command.
type ImportResult struct {
	Imported   int       `json:"imported"`
	Duplicates int       `json:"duplicates"`
	Total      int       `json:"total"`
	DryRun     bool      `json:"dry_run,omitempty"`
	Rows       []row.Row `json:"rows,omitempty"`
	Skipped    []string  `json:"skipped,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	policy, err := batch.ParsePolicy(cfg.Dedupe)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	files, err := readInputFiles(args)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	res, err := batch.Process(files, policy)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	if len(res.Rows) == 0 {
		exitWithError(ExitDataError, "no records with corresponding emails found")
	}

	existing, err := storage.ReadAll(config.RowsPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "reading stored rows: %v", err)
	}

	merged := batch.Dedupe(append(existing, res.Rows...), policy)
	imported := len(merged) - len(existing)
	duplicates := len(res.Rows) - imported

	if importDryRun {
		if humanOutput {
			fmt.Printf("Would import %d rows (%d duplicates skipped)\n\n", imported, duplicates)
			for i, r := range merged[len(existing):] {
				printRowSummary(i+1, r)
			}
		} else {
			outputJSON(ImportResult{
				Imported:   imported,
				Duplicates: duplicates,
				Total:      len(merged),
				DryRun:     true,
				Rows:       merged[len(existing):],
				Skipped:    res.Skipped,
			})
		}
		return nil
	}

	if err := storage.WriteAll(config.RowsPath(repoRoot), merged); err != nil {
		exitWithError(ExitError, "writing rows.jsonl: %v", err)
	}

	db := mustOpenDatabase(repoRoot)
	defer db.Close()
	if _, err := db.RebuildFromJSONL(config.RowsPath(repoRoot)); err != nil {
		// JSONL is the source of truth; a cache failure is recoverable.
		slog.Warn("rebuilding query cache", "error", err)
	}

	if humanOutput {
		fmt.Printf("Imported %d rows (%d duplicates skipped), %d total\n", imported, duplicates, len(merged))
		for _, name := range res.Skipped {
			fmt.Printf("Skipped empty file: %s\n", name)
		}
	} else {
		outputJSON(ImportResult{
			Imported:   imported,
			Duplicates: duplicates,
			Total:      len(merged),
			Skipped:    res.Skipped,
		})
	}

	return nil
}
