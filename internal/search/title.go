// Package search provides pure helpers over already-fetched literature
// data: title search with tiered ranking, advisory input validation, and
// identifier extraction. Nothing in this package touches the store.
package search

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// Match weights for the three ranking tiers.
const (
	scoreExact     = 100
	scoreSubstring = 50
	scoreWord      = 25
)

// ByTitle matches source summaries against a query, case-insensitively,
// in three tiers: exact title match, substring containment, then any
// individual query word present in the title. Matches come back sorted by
// weight descending; ties keep the input order. Non-matches are excluded.
func ByTitle(sources []types.SourceSummary, query string) []types.SourceSummary {
	queryLower := strings.ToLower(query)
	words := strings.Fields(queryLower)

	type scored struct {
		source types.SourceSummary
		score  int
	}
	var matches []scored

	for _, src := range sources {
		titleLower := strings.ToLower(src.Title)

		switch {
		case titleLower == queryLower:
			matches = append(matches, scored{src, scoreExact})
		case strings.Contains(titleLower, queryLower):
			matches = append(matches, scored{src, scoreSubstring})
		case anyWordIn(titleLower, words):
			matches = append(matches, scored{src, scoreWord})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	results := make([]types.SourceSummary, len(matches))
	for i, m := range matches {
		results[i] = m.source
	}
	return results
}

func anyWordIn(title string, words []string) bool {
	for _, w := range words {
		if strings.Contains(title, w) {
			return true
		}
	}
	return false
}
