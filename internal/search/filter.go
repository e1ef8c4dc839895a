package search

import (
	"strings"

	"skillswap/internal/usecase"
)

// Filter narrows an already-fetched ranked match list by a free-text query,
// the same way the client filters results without a round trip. Matching is
// a case-insensitive substring test over the candidate's name, bio, and both
// skill lists. An empty query returns the input unchanged. Order is
// preserved; the input slice is never mutated.
func Filter(matches []usecase.RankedMatch, query string) []usecase.RankedMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return matches
	}

	out := make([]usecase.RankedMatch, 0, len(matches))
	for _, m := range matches {
		if matchesQuery(m, q) {
			out = append(out, m)
		}
	}
	return out
}

func matchesQuery(m usecase.RankedMatch, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Bio), q) {
		return true
	}
	for _, s := range m.TeachSkills {
		if strings.Contains(strings.ToLower(s.Name), q) {
			return true
		}
	}
	for _, s := range m.LearnSkills {
		if strings.Contains(strings.ToLower(s.Name), q) {
			return true
		}
	}
	return false
}
