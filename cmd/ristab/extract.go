package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/talmon-lab/ristab/internal/batch"
	"github.com/talmon-lab/ristab/internal/export"
	"github.com/talmon-lab/ristab/internal/row"
)

var (
	extractCSV    string
	extractDedupe string
)

func init() {
	extractCmd.Flags().StringVar(&extractCSV, "csv", "", "Write rows as CSV to a file (use - for stdout)")
	extractCmd.Flags().StringVar(&extractDedupe, "dedupe", "exact", "Deduplication policy (exact, title-email)")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <file>...",
	Short: "Parse RIS files and print the extracted rows",
	Long: `Parse RIS files and print one row per resolved corresponding email.

Runs standalone: no repository is needed. Empty files are skipped and
reported; entries without a title or without a resolvable email are
silently dropped.

Examples:
  ristab extract refs.ris
  ristab extract part1.ris part2.ris --csv table.csv
  ristab extract refs.ris --csv - > table.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

// ExtractResult is the JSON response for the extract command.
type ExtractResult struct {
	Total   int       `json:"total"`
	Rows    []row.Row `json:"rows"`
	Skipped []string  `json:"skipped,omitempty"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	policy, err := batch.ParsePolicy(extractDedupe)
	if err != nil {
		exitWithError(ExitError, "%v", err)
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

	if extractCSV != "" {
		if err := writeCSV(extractCSV, res.Rows); err != nil {
			exitWithError(ExitError, "writing CSV: %v", err)
		}
		if extractCSV != "-" {
			if humanOutput {
				fmt.Printf("Wrote %d rows to %s (%d files skipped)\n", len(res.Rows), extractCSV, len(res.Skipped))
			} else {
				outputJSON(ExtractResult{Total: len(res.Rows), Skipped: res.Skipped})
			}
		}
		return nil
	}

	if humanOutput {
		fmt.Printf("Extracted %d rows:\n\n", len(res.Rows))
		for i, r := range res.Rows {
			printRowSummary(i+1, r)
		}
		for _, name := range res.Skipped {
			fmt.Printf("Skipped empty file: %s\n", name)
		}
	} else {
		outputJSON(ExtractResult{
			Total:   len(res.Rows),
			Rows:    res.Rows,
			Skipped: res.Skipped,
		})
	}

	return nil
}

// writeCSV writes rows to the named file, or to stdout for "-".
func writeCSV(path string, rows []row.Row) error {
	if path == "-" {
		return export.WriteCSV(os.Stdout, rows, nil)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return export.WriteCSV(f, rows, nil)
}
