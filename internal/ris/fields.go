package ris

import "strings"

// Separator divides a line into tag and value. Values may legitimately
// contain the same sequence again (a title with " - "), so only the first
// occurrence counts.
const Separator = " - "

// ParseEntry extracts the tagged fields of one record block. Lines without
// the separator, or with an empty tag, are skipped without error: many
// lines are continuation text or noise.
func ParseEntry(raw string) *Entry {
	e := &Entry{text: raw}

	for _, line := range strings.Split(raw, "\n") {
		tag, value, ok := splitField(strings.TrimSpace(line))
		if !ok {
			continue
		}
		e.fields = append(e.fields, field{tag: tag, value: value})

		switch tag {
		case TagTitle:
			e.Title = value
		case TagYear:
			e.Year = value
		case TagJournalFull, TagJournalShort:
			e.Journal = value
		case TagKeyword:
			e.Keywords = append(e.Keywords, value)
		case TagAuthor:
			e.Authors = append(e.Authors, value)
			if e.FirstAuthor == "" {
				e.FirstAuthor = value
			}
		}
	}

	return e
}

// splitField splits a line on the first separator occurrence.
func splitField(line string) (tag, value string, ok bool) {
	tag, value, ok = strings.Cut(line, Separator)
	if !ok {
		return "", "", false
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", "", false
	}
	return tag, strings.TrimSpace(value), true
}
