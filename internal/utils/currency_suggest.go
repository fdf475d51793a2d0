package utils

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance keeps suggestions to codes one edit away; with 3-letter codes
// anything further is just noise.
const maxSuggestionDistance = 1

// SuggestCurrencyCodes returns up to limit candidates closest to code, nearest first.
func SuggestCurrencyCodes(code string, candidates []string, limit int) []string {
	type scored struct {
		code     string
		distance int
	}
	matches := make([]scored, 0)
	for _, candidate := range candidates {
		d := levenshtein.ComputeDistance(code, candidate)
		if d <= maxSuggestionDistance {
			matches = append(matches, scored{code: candidate, distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].code < matches[j].code
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.code
	}
	return suggestions
}
