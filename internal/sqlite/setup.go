package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// CreateDatabase initializes a new literature store file at path, creating
// parent directories as needed. It refuses to touch an existing file;
// deleting an old store is the caller's decision. This is the one-time
// setup step that Store.New expects to have already happened.
func CreateDatabase(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("database already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat database path: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
