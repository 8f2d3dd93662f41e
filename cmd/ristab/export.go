package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/talmon-lab/ristab/internal/config"
	"github.com/talmon-lab/ristab/internal/export"
	"github.com/talmon-lab/ristab/internal/storage"
)

var (
	exportOut      string
	exportNoHeader bool
)

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportNoHeader, "no-header", false, "Omit the header row")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored rows as CSV",
	Long: `Export stored rows as CSV.

Reads rows.jsonl directly so the export works even when the cache is
stale. Output goes to stdout unless --out is given.

Examples:
  ristab export > table.csv
  ristab export --out table.csv
  ristab export --no-header | wc -l`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	rows, err := storage.ReadAll(config.RowsPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "reading rows.jsonl: %v", err)
	}

	opts := export.NewOptions()
	opts.IncludeHeader = !exportNoHeader

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			exitWithError(ExitError, "creating %s: %v", exportOut, err)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteCSV(out, rows, opts); err != nil {
		exitWithError(ExitError, "writing CSV: %v", err)
	}

	if exportOut != "" {
		fmt.Fprintf(os.Stderr, "Exported %d rows to %s\n", len(rows), exportOut)
	}

	return nil
}
