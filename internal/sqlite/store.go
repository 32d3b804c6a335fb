package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// timeFormat is the fixed-width UTC timestamp layout persisted in created_at
// columns. Fixed width keeps lexicographic order equal to chronological
// order, which ORDER BY created_at depends on.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store is the data access layer for a literature database. Every operation
// opens its own connection, commits its own unit of work, and closes the
// connection before returning; no connection is held between calls.
type Store struct {
	config types.Config
}

var _ types.Store = (*Store)(nil)

// New creates a Store for the database at config.DBPath. It fails fast with
// ErrStoreUnavailable if the path does not reference an initialized store
// (missing file or missing schema). Schema creation is a separate one-time
// step; see CreateDatabase.
func New(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Store{config: config}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	for _, table := range storeTables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: missing table %s in %s",
				types.ErrStoreUnavailable, table, config.DBPath)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrStoreUnavailable, err)
		}
	}

	return s, nil
}

// open returns a fresh connection to the store file. The caller must close
// it on every exit path.
func (s *Store) open() (*sql.DB, error) {
	if _, err := os.Stat(s.config.DBPath); err != nil {
		return nil, fmt.Errorf("%w: database not found at %s",
			types.ErrStoreUnavailable, s.config.DBPath)
	}

	db, err := sql.Open("sqlite", s.config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStoreUnavailable, err)
	}
	return db, nil
}

// now returns the current UTC time formatted for persistence.
func now() string {
	return time.Now().UTC().Format(timeFormat)
}

// parseTime converts a persisted created_at value back to time.Time.
func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return t, nil
}

// sourceExists reports whether a source row with the given ID is present.
func sourceExists(db *sql.DB, sourceID string) (bool, error) {
	var one int
	err := db.QueryRow("SELECT 1 FROM sources WHERE id = ?", sourceID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking source existence: %w", err)
	}
	return true, nil
}
