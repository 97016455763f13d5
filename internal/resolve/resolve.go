// Package resolve picks the best catalog candidate for a filename hint.
package resolve

import (
	"github.com/hbollon/go-edlib"
)

// Resolve returns the index of the best candidate title for hint, or -1
// when candidates is empty.
//
// The walk keeps the provider's first result as the running best and only
// replaces it when a candidate is strictly closer by Levenshtein distance
// AND not already claimed by another item in the same scan pass. An equal
// distance keeps the earlier candidate, so the provider's own relevance
// ordering breaks ties; the only exception is a running best that is
// itself claimed, which an unclaimed candidate at equal distance evicts.
// An unclaimed exact match short-circuits the walk.
//
// Resolve is pure: it never mutates its inputs and touches no I/O.
func Resolve(hint string, candidates []string, claimed map[string]bool) int {
	if len(candidates) == 0 {
		return -1
	}

	best := 0
	bestDist := edlib.LevenshteinDistance(hint, candidates[0])

	for i := 1; i < len(candidates); i++ {
		if bestDist == 0 && !claimed[candidates[best]] {
			break
		}
		if claimed[candidates[i]] {
			continue
		}
		d := edlib.LevenshteinDistance(hint, candidates[i])
		if d < bestDist || (d == bestDist && claimed[candidates[best]]) {
			best = i
			bestDist = d
		}
	}
	return best
}
