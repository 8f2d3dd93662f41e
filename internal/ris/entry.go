// Package ris parses RIS bibliographic export files: splitting raw file
// text into records, extracting tagged fields, and resolving which email
// belongs to which author.
package ris

// Recognized RIS tags. Tags are case-sensitive and matched exactly; any
// other tag is inert for structured extraction, but its line remains
// visible to the fallback email scan.
const (
	TagTitle        = "T1"
	TagYear         = "Y1"
	TagJournalFull  = "JF"
	TagJournalShort = "JO"
	TagKeyword      = "KW"
	TagAuthor       = "A1"
	TagMisc         = "M1"
	TagAddress      = "AD"
)

// UnknownAuthor is the display name used when an email cannot be paired
// with any author name.
const UnknownAuthor = "N/A"

// Entry is one bibliographic record accumulated from its tagged lines.
type Entry struct {
	Title    string   // Last T1 line wins
	Year     string   // Y1
	Journal  string   // JF or JO, whichever appears last
	Keywords []string // One per KW line, duplicates retained, order preserved
	Authors  []string // One per A1 line, order preserved

	// FirstAuthor is the value of the first A1 line and never changes
	// once set.
	FirstAuthor string

	// fields holds every parsed (tag, value) pair in file order; text is
	// the full record text, kept for the fallback email scan.
	fields []field
	text   string
}

type field struct {
	tag   string
	value string
}
