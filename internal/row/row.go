// Package row defines the flat output record produced for each resolved
// corresponding email.
package row

import "strings"

// JoinSeparator joins multi-value fields (authors, keywords) in a row.
const JoinSeparator = "; "

// Row pairs an entry's bibliographic fields with a single resolved
// corresponding email. An entry with three resolved emails yields three
// rows sharing the same title, authors and keywords.
type Row struct {
	Title               string `json:"title"`
	Year                string `json:"year"`
	Journal             string `json:"journal"`
	CorrespondingAuthor string `json:"corresponding_author"`
	Email               string `json:"email"`
	Authors             string `json:"authors"`
	Keywords            string `json:"keywords"`
	SourceFile          string `json:"source_file"`
}

// keySep separates fields inside dedup keys. It cannot occur in field
// text read from line-based input.
const keySep = "\x1f"

// ExactKey identifies a row by every one of its fields.
func (r Row) ExactKey() string {
	return strings.Join([]string{
		r.Title, r.Year, r.Journal, r.CorrespondingAuthor,
		r.Email, r.Authors, r.Keywords, r.SourceFile,
	}, keySep)
}

// TitleEmailKey identifies a row by title and email only, collapsing rows
// that differ in incidental fields such as year or journal.
func (r Row) TitleEmailKey() string {
	return r.Title + keySep + r.Email
}

// Join joins values with the standard multi-value separator. An empty
// slice joins to the empty string.
func Join(values []string) string {
	return strings.Join(values, JoinSeparator)
}
