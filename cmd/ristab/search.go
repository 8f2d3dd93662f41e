package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/talmon-lab/ristab/internal/row"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search stored rows",
	Long: `Search stored rows by full-text query.

Prefix the query to search a single field:
  title:     search titles only
  author:    search corresponding authors only
  keyword:   search keywords only
  email:     substring match on emails

Examples:
  ristab search "gut microbiome"
  ristab search author:tanaka
  ristab search email:@example.edu`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

// SearchResult is the JSON response for the search command.
type SearchResult struct {
	Query string    `json:"query"`
	Total int       `json:"total"`
	Rows  []row.Row `json:"rows"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	repoRoot := mustFindRepository()

	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	var rows []row.Row
	var err error

	field, value, found := strings.Cut(query, ":")
	if found && isSearchField(field) {
		rows, err = db.SearchField(field, value, searchLimit)
	} else {
		rows, err = db.Search(query, searchLimit)
	}
	if err != nil {
		exitWithError(ExitError, "search failed: %v", err)
	}

	if humanOutput {
		if len(rows) == 0 {
			fmt.Printf("No results for %q\n", query)
			return nil
		}

		fmt.Printf("%d results for %q:\n\n", len(rows), query)
		for i, r := range rows {
			printRowSummary(i+1, r)
		}
	} else {
		if rows == nil {
			rows = []row.Row{}
		}
		outputJSON(SearchResult{Query: query, Total: len(rows), Rows: rows})
	}

	return nil
}

func isSearchField(field string) bool {
	switch field {
	case "title", "author", "keyword", "email":
		return true
	}
	return false
}
