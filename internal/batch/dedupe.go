package batch

import (
	"fmt"

	"github.com/talmon-lab/ristab/internal/row"
)

// Policy selects the deduplication key applied across a batch.
type Policy string

const (
	// PolicyExact drops only rows equal in every field. This is the
	// default: two rows sharing title and email but differing in year are
	// plausibly distinct bibliographic records (a reprint or erratum).
	PolicyExact Policy = "exact"

	// PolicyTitleEmail collapses rows sharing (title, email), keeping the
	// first-seen row's other fields.
	PolicyTitleEmail Policy = "title-email"
)

// ParsePolicy validates a policy name from config or flags. The empty
// string maps to the default.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyExact:
		return PolicyExact, nil
	case PolicyTitleEmail:
		return PolicyTitleEmail, nil
	}
	return "", fmt.Errorf("unknown dedupe policy %q (valid: %s, %s)", s, PolicyExact, PolicyTitleEmail)
}

func (p Policy) key(r row.Row) string {
	if p == PolicyTitleEmail {
		return r.TitleEmailKey()
	}
	return r.ExactKey()
}

// Dedupe removes duplicate rows under the policy, preserving first-seen
// order. The input slice is not modified.
func Dedupe(rows []row.Row, policy Policy) []row.Row {
	seen := make(map[string]bool, len(rows))
	out := make([]row.Row, 0, len(rows))
	for _, r := range rows {
		k := policy.key(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
