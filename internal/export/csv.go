// Package export serializes output rows for spreadsheet analysis.
package export

import (
	"encoding/csv"
	"io"

	"github.com/talmon-lab/ristab/internal/row"
)

// Columns is the stable output column order.
var Columns = []string{
	"Title", "Year", "Journal", "Corresponding Author",
	"Email", "All Authors", "Keywords", "Source File",
}

// Options configures CSV output.
type Options struct {
	// IncludeHeader includes the column header row
	IncludeHeader bool
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{IncludeHeader: true}
}

// WriteCSV writes rows as CSV in the stable column order. It is a pure
// function of the row sequence; callers that want caching do it outside.
func WriteCSV(w io.Writer, rows []row.Row, opts *Options) error {
	if opts == nil {
		opts = NewOptions()
	}

	writer := csv.NewWriter(w)

	if opts.IncludeHeader {
		if err := writer.Write(Columns); err != nil {
			return err
		}
	}

	for _, r := range rows {
		record := []string{
			r.Title, r.Year, r.Journal, r.CorrespondingAuthor,
			r.Email, r.Authors, r.Keywords, r.SourceFile,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
