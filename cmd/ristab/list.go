package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/talmon-lab/ristab/internal/row"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of rows to show (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored rows",
	RunE:  runList,
}

// ListResult is the JSON response for the list command.
type ListResult struct {
	Total int       `json:"total"`
	Rows  []row.Row `json:"rows"`
}

func runList(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	total, err := db.Count()
	if err != nil {
		exitWithError(ExitError, "counting rows: %v", err)
	}

	rows, err := db.ListAll(listLimit)
	if err != nil {
		exitWithError(ExitError, "listing rows: %v", err)
	}

	if humanOutput {
		if total == 0 {
			fmt.Println("No rows stored. Run 'ristab import' to add some.")
			return nil
		}

		fmt.Printf("%d rows", total)
		if listLimit > 0 && len(rows) < total {
			fmt.Printf(" (showing %d)", len(rows))
		}
		fmt.Println(":")

		for _, r := range rows {
			fmt.Printf("  %-50s %s <%s>\n",
				truncateString(r.Title, ListTitleMaxLen),
				r.CorrespondingAuthor, r.Email)
		}
	} else {
		if rows == nil {
			rows = []row.Row{}
		}
		outputJSON(ListResult{Total: total, Rows: rows})
	}

	return nil
}
