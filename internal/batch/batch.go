// Package batch turns a set of named RIS file buffers into one
// deduplicated sequence of output rows.
package batch

import (
	"log/slog"
	"sort"

	"github.com/talmon-lab/ristab/internal/ris"
	"github.com/talmon-lab/ristab/internal/row"
)

// File is one named input buffer. How the bytes arrived (disk, upload,
// stdin) is the caller's concern.
type File struct {
	Name string
	Data []byte
}

// Result is the outcome of one batch: the deduplicated rows plus the
// names of files skipped for being empty or undecodable.
type Result struct {
	Rows    []row.Row `json:"rows"`
	Skipped []string  `json:"skipped,omitempty"`
}

// Process parses every file and merges the per-file rows into one
// deduplicated result. Files are processed in order, each producing its
// rows independently; a pure merge plus one dedup pass combines them, so
// the result is a deterministic function of the inputs with no state
// carried between batches. A failure aborts the whole batch.
func Process(files []File, policy Policy) (*Result, error) {
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}

	res := &Result{}
	var merged []row.Row
	for _, f := range files {
		rows, ok := extract(f)
		if !ok {
			slog.Warn("skipping empty file", "file", f.Name)
			res.Skipped = append(res.Skipped, f.Name)
			continue
		}
		merged = append(merged, rows...)
	}
	res.Rows = Dedupe(merged, policy)
	return res, nil
}

// extract produces the rows for a single file. ok is false when the file
// decodes to nothing.
func extract(f File) (rows []row.Row, ok bool) {
	text, ok := ris.Decode(f.Data)
	if !ok {
		return nil, false
	}
	for rec := range ris.Records(text) {
		entry := ris.ParseEntry(rec)
		rows = append(rows, entryRows(entry, f.Name)...)
	}
	return rows, true
}

// entryRows expands one parsed entry into output rows, one per resolved
// email. Entries without a title, or with a title but no resolvable
// email, contribute nothing. Emails are emitted in sorted order so batch
// output is stable.
func entryRows(e *ris.Entry, source string) []row.Row {
	if e.Title == "" {
		return nil
	}
	corr := e.Correspondence()
	if len(corr) == 0 {
		return nil
	}

	emails := make([]string, 0, len(corr))
	for email := range corr {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	authors := row.Join(e.Authors)
	keywords := row.Join(e.Keywords)

	rows := make([]row.Row, 0, len(emails))
	for _, email := range emails {
		rows = append(rows, row.Row{
			Title:               e.Title,
			Year:                e.Year,
			Journal:             e.Journal,
			CorrespondingAuthor: corr[email],
			Email:               email,
			Authors:             authors,
			Keywords:            keywords,
			SourceFile:          source,
		})
	}
	return rows
}
