package ris

import (
	"iter"
	"strings"
)

// RecordSeparator delimits entries: a newline followed by the end-of-record
// tag and its separator. The marker's presence, not its value, ends a
// record, so it is matched textually instead of being parsed as a field.
const RecordSeparator = "\nER - "

const bom = "\ufeff"

// Decode interprets raw file bytes as UTF-8, stripping a leading byte-order
// mark and silently discarding malformed byte sequences instead of failing
// the file. ok is false when the decoded content is empty or
// whitespace-only, in which case the file should be skipped.
func Decode(data []byte) (text string, ok bool) {
	text = strings.ToValidUTF8(string(data), "")
	text = strings.TrimPrefix(text, bom)
	text = strings.TrimSpace(text)
	return text, text != ""
}

// Records yields each record block in text, in order. Blank fragments
// between markers are dropped. The sequence is finite and single-use.
func Records(text string) iter.Seq[string] {
	blocks := strings.SplitSeq(text, RecordSeparator)
	return func(yield func(string) bool) {
		for block := range blocks {
			if strings.TrimSpace(block) == "" {
				continue
			}
			if !yield(block) {
				return
			}
		}
	}
}
