// Tests for store construction and the one-time database setup step.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// newTestStore creates an initialized database in a temp directory and
// returns a Store opened on it.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "literature.db")
	require.NoError(t, CreateDatabase(path))

	s, err := New(types.Config{DBPath: path})
	require.NoError(t, err)
	return s
}

func TestCreateDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "literature.db")

	require.NoError(t, CreateDatabase(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Refuses to clobber an existing database.
	err = CreateDatabase(path)
	assert.ErrorContains(t, err, "already exists")
}

func TestCreateDatabaseMakesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "literature.db")
	require.NoError(t, CreateDatabase(path))

	_, err := New(types.Config{DBPath: path})
	assert.NoError(t, err)
}

func TestNewFailsFast(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := New(types.Config{DBPath: filepath.Join(tmpDir, "absent.db")})
		assert.ErrorIs(t, err, types.ErrStoreUnavailable)
	})

	t.Run("empty config", func(t *testing.T) {
		_, err := New(types.Config{})
		assert.ErrorIs(t, err, types.ErrDBPathEmpty)
	})

	t.Run("file without schema", func(t *testing.T) {
		path := filepath.Join(tmpDir, "empty.db")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := New(types.Config{DBPath: path})
		assert.ErrorIs(t, err, types.ErrStoreUnavailable)
	})
}

func TestSchemaEnforcesVocabularies(t *testing.T) {
	// Engine-level CHECK constraints are the second line of defense behind
	// application-level validation; verify they hold for direct writes that
	// bypass the Store.
	path := filepath.Join(t.TempDir(), "literature.db")
	require.NoError(t, CreateDatabase(path))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(
		"INSERT INTO sources (id, title, type, identifiers, status, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		"id-1", "Some Title", "magazine", "{}", "unread", "2026-01-01T00:00:00.000000000Z",
	)
	assert.Error(t, err, "unknown source type should violate CHECK")

	_, err = db.Exec(
		"INSERT INTO sources (id, title, type, identifiers, status, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		"id-1", "Some Title", "paper", "{}", "skimmed", "2026-01-01T00:00:00.000000000Z",
	)
	assert.Error(t, err, "unknown status should violate CHECK")

	_, err = db.Exec(
		"INSERT INTO source_entity_links (source_id, entity_name, relation_type, created_at) VALUES (?, ?, ?, ?)",
		"id-1", "transformers", "mentions", "2026-01-01T00:00:00.000000000Z",
	)
	assert.Error(t, err, "unknown relation type should violate CHECK")
}
