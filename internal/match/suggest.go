package match

import (
	"sort"
	"strings"
)

// DefaultMaxSuggestions bounds the number of names Suggest returns.
const DefaultMaxSuggestions = 3

// Levenshtein computes the edit distance between two strings, counting
// single-byte insertions, deletions and substitutions.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// Keep the shorter string in a; only two rows of the matrix are needed.
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Suggest returns up to limit candidates close to name, closest first.
// Comparison ignores case; ties are broken alphabetically. A candidate is
// close when its distance is at most a third of the name length, and never
// less than two edits.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name string
		dist int
	}

	threshold := max(2, len(name)/3)
	lower := strings.ToLower(name)

	var hits []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if d := Levenshtein(lower, strings.ToLower(c)); d <= threshold {
			hits = append(hits, scored{name: c, dist: d})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}

		return hits[i].name < hits[j].name
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}
