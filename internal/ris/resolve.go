package ris

import (
	"regexp"
	"strings"
)

// emailPattern matches a single address: one local part, one "@", and a
// domain ending in a dotted alphabetic suffix.
const emailPattern = `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`

var (
	emailRe = regexp.MustCompile(`(?i)` + emailPattern)

	// pairRe matches "name, email" where the name is any run of characters
	// excluding comma, semicolon and parentheses.
	pairRe = regexp.MustCompile(`(?i)([^,;()]+?),\s*(` + emailPattern + `)`)
)

// correspondingMark is the annotation some exports append after the
// corresponding author's address. It is stripped from paired names.
const correspondingMark = "(Corresponding Author)"

// correspondenceTags are the tags whose values are searched for paired
// name/email matches.
var correspondenceTags = map[string]bool{
	TagMisc:    true,
	TagAddress: true,
	TagAuthor:  true,
}

// Candidate is one (email, name) pairing proposed by a strategy. Email is
// lowercased; Name is empty when the strategy found only a bare address.
type Candidate struct {
	Email string
	Name  string
}

// strategy proposes candidates for an entry. Strategies run in priority
// order and the first to name an email wins; later candidates never rename
// an email that is already resolved.
type strategy func(e *Entry) []Candidate

var strategies = []strategy{pairedNames, bareEmails}

// Correspondence resolves the entry's mapping from email to display name.
// An email surfaced only by the bare scan is attributed to the first
// author, or to UnknownAuthor when the entry has none.
func (e *Entry) Correspondence() map[string]string {
	resolved := make(map[string]string)
	for _, s := range strategies {
		for _, c := range s(e) {
			if _, seen := resolved[c.Email]; seen {
				continue
			}
			name := c.Name
			if name == "" {
				name = e.FirstAuthor
			}
			if name == "" {
				name = UnknownAuthor
			}
			resolved[c.Email] = name
		}
	}
	return resolved
}

// pairedNames extracts "name, email" matches from the values of address,
// misc and author fields.
func pairedNames(e *Entry) []Candidate {
	var out []Candidate
	for _, f := range e.fields {
		if !correspondenceTags[f.tag] {
			continue
		}
		for _, m := range pairRe.FindAllStringSubmatch(f.value, -1) {
			out = append(out, Candidate{
				Email: strings.ToLower(m[2]),
				Name:  cleanName(m[1]),
			})
		}
	}
	return out
}

// bareEmails finds every email-shaped token anywhere in the record text,
// including lines with unrecognized tags or no tag at all.
func bareEmails(e *Entry) []Candidate {
	var out []Candidate
	for _, m := range emailRe.FindAllString(e.text, -1) {
		out = append(out, Candidate{Email: strings.ToLower(m)})
	}
	return out
}

// cleanName strips asterisk markers and the corresponding-author
// annotation, then keeps the segment after the final semicolon: of several
// names joined together, the one textually closest to the email wins.
func cleanName(name string) string {
	name = strings.ReplaceAll(name, "*", "")
	name = strings.ReplaceAll(name, correspondingMark, "")
	if i := strings.LastIndex(name, ";"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSpace(name)
}
