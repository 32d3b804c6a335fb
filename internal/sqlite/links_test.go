package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func TestLinkToEntity(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddSource("Attention Is All You Need", types.SourcePaper, types.IdentifierArxiv, "1706.03762")
	require.NoError(t, err)

	// Deliberately not in alphabetical order.
	require.NoError(t, s.LinkToEntity(id, "transformer architecture", types.RelationIntroduces, "first transformer paper"))
	require.NoError(t, s.LinkToEntity(id, "attention mechanism", types.RelationDiscusses, ""))
	require.NoError(t, s.LinkToEntity(id, "machine translation", types.RelationApplies, ""))

	src, err := s.GetSourceByID(id)
	require.NoError(t, err)
	require.Len(t, src.EntityLinks, 3)

	// Insertion order, not entity-name order.
	assert.Equal(t, "transformer architecture", src.EntityLinks[0].EntityName)
	assert.Equal(t, types.RelationIntroduces, src.EntityLinks[0].RelationType)
	assert.Equal(t, "first transformer paper", src.EntityLinks[0].Notes)

	assert.Equal(t, "attention mechanism", src.EntityLinks[1].EntityName)
	assert.Empty(t, src.EntityLinks[1].Notes)

	assert.Equal(t, "machine translation", src.EntityLinks[2].EntityName)
}

func TestLinkToEntityUniquePerSource(t *testing.T) {
	s := newTestStore(t)

	a, err := s.AddSource("A", types.SourcePaper, types.IdentifierArxiv, "1111.11111")
	require.NoError(t, err)
	b, err := s.AddSource("B", types.SourcePaper, types.IdentifierArxiv, "2222.22222")
	require.NoError(t, err)

	require.NoError(t, s.LinkToEntity(a, "transformers", types.RelationIntroduces, ""))

	// The same entity can be linked from many different sources.
	require.NoError(t, s.LinkToEntity(b, "transformers", types.RelationExtends, ""))

	// Re-linking the same (source, entity) pair is rejected, regardless of
	// relation type.
	err = s.LinkToEntity(a, "transformers", types.RelationDiscusses, "")
	var conflict *types.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "transformers", conflict.Key)
	assert.Equal(t, a, conflict.ExistingID)
}

func TestLinkToEntityErrors(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddSource("T", types.SourcePaper, types.IdentifierDOI, "10.1/t")
	require.NoError(t, err)

	t.Run("invalid relation type", func(t *testing.T) {
		err := s.LinkToEntity(id, "transformers", "mentions", "")
		var verr *types.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "relation type", verr.Field)
	})

	t.Run("empty entity name", func(t *testing.T) {
		var verr *types.ValidationError
		require.ErrorAs(t, s.LinkToEntity(id, "", types.RelationDiscusses, ""), &verr)
		assert.Equal(t, "entity name", verr.Field)
	})

	t.Run("missing source", func(t *testing.T) {
		err := s.LinkToEntity("no-such-id", "transformers", types.RelationDiscusses, "")
		assert.True(t, errors.Is(err, types.ErrNotFound))
	})
}
