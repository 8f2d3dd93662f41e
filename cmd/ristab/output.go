package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/talmon-lab/ristab/internal/batch"
	"github.com/talmon-lab/ristab/internal/row"
)

// Title truncation lengths by context.
const (
	ListTitleMaxLen   = 50 // Used in list command output
	SearchTitleMaxLen = 70 // Used in search result summaries
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// readInputFiles loads each named file into a batch input buffer. Buffers
// carry the base name so output rows stay stable regardless of where the
// files were read from.
func readInputFiles(paths []string) ([]batch.File, error) {
	files := make([]batch.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		files = append(files, batch.File{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}

// printRowSummary prints one row in human-readable format.
func printRowSummary(num int, r row.Row) {
	fmt.Printf("[%d] %s\n", num, truncateString(r.Title, SearchTitleMaxLen))
	fmt.Printf("    %s <%s>\n", r.CorrespondingAuthor, r.Email)

	if r.Journal != "" && r.Year != "" {
		fmt.Printf("    %s (%s)\n", r.Journal, r.Year)
	} else if r.Journal != "" {
		fmt.Printf("    %s\n", r.Journal)
	} else if r.Year != "" {
		fmt.Printf("    (%s)\n", r.Year)
	}

	if r.SourceFile != "" {
		fmt.Printf("    from %s\n", r.SourceFile)
	}
	fmt.Println()
}
