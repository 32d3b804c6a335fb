package sqlite

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func TestAddNote(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddSource("Attention Is All You Need", types.SourcePaper, types.IdentifierArxiv, "1706.03762")
	require.NoError(t, err)

	require.NoError(t, s.AddNote(id, "Key Insights", "Eliminates recurrence entirely."))

	src, err := s.GetSourceByID(id)
	require.NoError(t, err)
	require.Len(t, src.Notes, 1)
	assert.Equal(t, "Key Insights", src.Notes[0].Title)
	assert.Equal(t, "Eliminates recurrence entirely.", src.Notes[0].Content)
	assert.False(t, src.Notes[0].CreatedAt.IsZero())
}

func TestAddNoteUniquePerSourceNotGlobal(t *testing.T) {
	s := newTestStore(t)

	a, err := s.AddSource("Source A", types.SourcePaper, types.IdentifierArxiv, "1111.11111")
	require.NoError(t, err)
	b, err := s.AddSource("Source B", types.SourcePaper, types.IdentifierArxiv, "2222.22222")
	require.NoError(t, err)

	require.NoError(t, s.AddNote(a, "Summary", "First pass."))

	// Same title on a different source is fine.
	require.NoError(t, s.AddNote(b, "Summary", "Different source."))

	// Second "Summary" on source A is a conflict.
	err = s.AddNote(a, "Summary", "Second pass.")
	var conflict *types.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Summary", conflict.Key)
	assert.Equal(t, a, conflict.ExistingID)
}

func TestAddNoteErrors(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddSource("T", types.SourcePaper, types.IdentifierDOI, "10.1/t")
	require.NoError(t, err)

	t.Run("missing source", func(t *testing.T) {
		err := s.AddNote("no-such-id", "Summary", "content")
		assert.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("empty title", func(t *testing.T) {
		var verr *types.ValidationError
		require.ErrorAs(t, s.AddNote(id, "", "content"), &verr)
		assert.Equal(t, "note title", verr.Field)
	})

	t.Run("empty content", func(t *testing.T) {
		var verr *types.ValidationError
		require.ErrorAs(t, s.AddNote(id, "Summary", ""), &verr)
		assert.Equal(t, "note content", verr.Field)
	})
}

func TestNotesOrderedNewestFirst(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddSource("T", types.SourcePaper, types.IdentifierDOI, "10.1/t")
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.AddNote(id, fmt.Sprintf("Note %d", i), "content"))
	}

	src, err := s.GetSourceByID(id)
	require.NoError(t, err)
	require.Len(t, src.Notes, 3)
	assert.Equal(t, "Note 3", src.Notes[0].Title)
	assert.Equal(t, "Note 2", src.Notes[1].Title)
	assert.Equal(t, "Note 1", src.Notes[2].Title)
}
