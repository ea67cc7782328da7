// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reconcile

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggestionMaxShare bounds how different a suggestion may be: the edit
// distance must not exceed half the longer heading's length.
const suggestionMaxShare = 2

// Suggest pairs each missing heading with the closest unmatched source
// heading by edit distance, for "closest match" hints when an outline entry
// finds no section. Headings with no plausible candidate are absent from
// the result.
func Suggest(missing, candidates []string) map[string]string {
	if len(missing) == 0 || len(candidates) == 0 {
		return nil
	}
	out := make(map[string]string)
	for _, m := range missing {
		best, bestDist := "", -1
		for _, c := range candidates {
			d := fuzzy.LevenshteinDistance(m, c)
			if bestDist < 0 || d < bestDist {
				best, bestDist = c, d
			}
		}
		longer := len(m)
		if len(best) > longer {
			longer = len(best)
		}
		if longer == 0 || bestDist*suggestionMaxShare > longer {
			continue
		}
		out[m] = best
	}
	return out
}
