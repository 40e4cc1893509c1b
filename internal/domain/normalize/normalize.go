// Package normalize converts raw profile and candidate attributes into
// canonical comparable form.
//
// Profile data arrives from free-text forms and resume extraction, so
// every function here degrades leniently: malformed input yields an
// empty set or empty string, never an error.
package normalize

import (
	"sort"
	"strings"
)

// Skills canonicalizes raw skill input into a sorted, deduplicated set
// of lower-cased tokens. Each raw element may itself be a
// comma-separated list ("React, Node"). Empty and whitespace-only
// tokens are dropped; nil input yields an empty, non-nil slice.
func Skills(raw []string) []string {
	seen := make(map[string]struct{})
	for _, r := range raw {
		for _, tok := range strings.Split(r, ",") {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			seen[tok] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// SkillsFromString canonicalizes a single comma-separated skill string.
func SkillsFromString(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return Skills([]string{raw})
}

// Branch canonicalizes a branch/major string. Empty input stays empty,
// which downstream scoring treats as "no branch signal".
func Branch(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
