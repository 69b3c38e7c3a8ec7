package resolver

import (
	"sort"
	"strings"
)

// maxSuggestions caps the "did you mean" list carried by not-found errors.
const maxSuggestions = 5

// nearest returns up to maxSuggestions candidates ranked by ascending
// Levenshtein distance to target, comparing lowercased forms. Equal
// distances order alphabetically for stable output.
func nearest(target string, candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	targetLower := strings.ToLower(target)

	type scored struct {
		name     string
		distance int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		ranked = append(ranked, scored{
			name:     name,
			distance: levenshtein(targetLower, strings.ToLower(name)),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].name < ranked[j].name
	})

	n := len(ranked)
	if n > maxSuggestions {
		n = maxSuggestions
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[i].name
	}
	return out
}

// levenshtein computes the classic dynamic-programming edit distance using
// two rolling rows.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
