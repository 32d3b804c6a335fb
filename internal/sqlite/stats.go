package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// Stats computes aggregate counts over the whole store: totals for sources,
// notes, and entity links, plus per-type and per-status source counts. The
// counts are derived by aggregation on every call; nothing is cached.
func (s *Store) Stats() (*types.Stats, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	stats := &types.Stats{
		SourcesByType:   map[string]int{},
		SourcesByStatus: map[string]int{},
	}

	if stats.SourcesByType, err = countGrouped(db, "type"); err != nil {
		return nil, err
	}
	if stats.SourcesByStatus, err = countGrouped(db, "status"); err != nil {
		return nil, err
	}

	totals := []struct {
		table string
		dest  *int
	}{
		{"sources", &stats.TotalSources},
		{"source_notes", &stats.TotalNotes},
		{"source_entity_links", &stats.TotalEntityLinks},
	}
	for _, t := range totals {
		if err := db.QueryRow("SELECT COUNT(*) FROM " + t.table).Scan(t.dest); err != nil {
			return nil, fmt.Errorf("counting %s: %w", t.table, err)
		}
	}

	return stats, nil
}

// countGrouped counts sources grouped by the given column. The column name
// comes from this package, never from callers.
func countGrouped(db *sql.DB, column string) (map[string]int, error) {
	rows, err := db.Query("SELECT " + column + ", COUNT(*) FROM sources GROUP BY " + column)
	if err != nil {
		return nil, fmt.Errorf("counting sources by %s: %w", column, err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scanning %s count: %w", column, err)
		}
		counts[key] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s counts: %w", column, err)
	}

	return counts, nil
}
