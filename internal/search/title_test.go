package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func summaries(titles ...string) []types.SourceSummary {
	out := make([]types.SourceSummary, len(titles))
	for i, title := range titles {
		out[i] = types.SourceSummary{ID: title, Title: title}
	}
	return out
}

func titles(results []types.SourceSummary) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestByTitleExcludesNonMatches(t *testing.T) {
	input := summaries("Transformer Networks", "A Study of Transformers", "Unrelated Topic")

	got := ByTitle(input, "Transformer")

	assert.Equal(t, []string{"Transformer Networks", "A Study of Transformers"}, titles(got))
}

func TestByTitleTiers(t *testing.T) {
	input := summaries(
		"Survey of Attention",     // word match on "attention"
		"Attention Is All You Need", // substring match
		"attention",               // exact match
	)

	got := ByTitle(input, "Attention")

	assert.Equal(t, []string{
		"attention",
		"Attention Is All You Need",
		"Survey of Attention",
	}, titles(got))
}

func TestByTitleWordTier(t *testing.T) {
	// No title contains the full query, but individual words appear.
	input := summaries("Deep Learning", "Learning to Rank", "Chemistry Basics")

	got := ByTitle(input, "deep learning methods")

	assert.Equal(t, []string{"Deep Learning", "Learning to Rank"}, titles(got))
}

func TestByTitleStableTies(t *testing.T) {
	input := summaries("Graph Neural Networks", "Neural Graph Databases", "Graph Theory")

	got := ByTitle(input, "graph")

	// All three are substring matches; input order is preserved.
	assert.Equal(t, []string{"Graph Neural Networks", "Neural Graph Databases", "Graph Theory"}, titles(got))
}

func TestByTitleCaseInsensitive(t *testing.T) {
	input := summaries("TRANSFORMER NETWORKS")

	got := ByTitle(input, "transformer networks")

	assert.Len(t, got, 1)
}

func TestByTitleNoMatches(t *testing.T) {
	got := ByTitle(summaries("Unrelated Topic"), "transformers")
	assert.Empty(t, got)
}
