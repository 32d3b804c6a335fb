// Package sqlite provides the public API for the SQLite literature store.
// It exposes the factory and database-creation functions while keeping
// implementation details internal.
// See docs/ARCHITECTURE.md § Public API.
package sqlite

import (
	"github.com/mesh-intelligence/stacks/internal/sqlite"
	"github.com/mesh-intelligence/stacks/pkg/types"
)

// CreateDatabase creates a new literature database at path, including
// parent directories. It fails if a file already exists there.
func CreateDatabase(path string) error {
	return sqlite.CreateDatabase(path)
}

// New opens a store over an existing database.
//
// Example:
//
//	store, err := sqlite.New(types.Config{DBPath: "literature.db"})
//	if err != nil {
//	    return err
//	}
//	id, err := store.AddSource("Attention Is All You Need", types.SourcePaper, types.IdentifierArxiv, "1706.03762")
func New(config types.Config) (types.Store, error) {
	return sqlite.New(config)
}
