package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func TestFormatSummary(t *testing.T) {
	src := &types.Source{
		ID:     "abc-123",
		Title:  "Attention Is All You Need",
		Type:   types.SourcePaper,
		Status: types.StatusCompleted,
		Identifiers: map[string]string{
			types.IdentifierArxiv: "1706.03762",
		},
		Notes: []types.Note{
			{Title: "Key Insights", Content: "..."},
		},
		EntityLinks: []types.EntityLink{
			{EntityName: "transformer architecture", RelationType: types.RelationIntroduces},
		},
	}

	got := FormatSummary(src)

	want := "Attention Is All You Need\n" +
		"   Type: paper\n" +
		"   Status: completed\n" +
		"   IDs: arxiv: 1706.03762\n" +
		"   Notes: 1\n" +
		"   Entity Links: 1"
	assert.Equal(t, want, got)
}

func TestFormatSummaryMinimal(t *testing.T) {
	src := &types.Source{
		Title:  "Bare Source",
		Type:   types.SourceBlog,
		Status: types.StatusUnread,
	}

	got := FormatSummary(src)

	assert.Equal(t, "Bare Source\n   Type: blog\n   Status: unread", got)
}
