// Package sqlite implements the literature store on SQLite.
// It owns the on-disk schema, enforces identity and uniqueness rules,
// executes filtered lookups, and computes aggregate statistics.
// See docs/ARCHITECTURE.md § Store.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// Schema DDL for all tables. The enumerated-column CHECK constraints are
// generated from the pkg/types vocabulary lists so the vocabularies stay
// defined in one place; they are the engine-level second line of defense
// behind application-level validation.
var (
	createSources = fmt.Sprintf(`CREATE TABLE sources (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    type TEXT NOT NULL CHECK (type IN (%s)),
    identifiers TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT '%s' CHECK (status IN (%s)),
    created_at TEXT NOT NULL
);`, quotedList(types.SourceTypeValues), types.StatusUnread, quotedList(types.StatusValues))

	createSourceNotes = `CREATE TABLE source_notes (
    source_id TEXT NOT NULL REFERENCES sources(id),
    note_title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    PRIMARY KEY (source_id, note_title)
);`

	createSourceEntityLinks = fmt.Sprintf(`CREATE TABLE source_entity_links (
    source_id TEXT NOT NULL REFERENCES sources(id),
    entity_name TEXT NOT NULL,
    relation_type TEXT NOT NULL CHECK (relation_type IN (%s)),
    notes TEXT,
    created_at TEXT NOT NULL,
    PRIMARY KEY (source_id, entity_name)
);`, quotedList(types.RelationTypeValues))
)

// Index DDL for common queries.
const (
	idxSourcesType        = `CREATE INDEX idx_sources_type ON sources(type);`
	idxSourcesStatus      = `CREATE INDEX idx_sources_status ON sources(status);`
	idxSourcesCreated     = `CREATE INDEX idx_sources_created ON sources(created_at);`
	idxSourceNotesCreated = `CREATE INDEX idx_source_notes_created ON source_notes(created_at);`
	idxEntityLinksName    = `CREATE INDEX idx_entity_links_name ON source_entity_links(entity_name);`
	idxEntityLinksCreated = `CREATE INDEX idx_entity_links_created ON source_entity_links(created_at);`
)

// storeTables lists the table names an initialized store must carry.
var storeTables = []string{"sources", "source_notes", "source_entity_links"}

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createSources,
	createSourceNotes,
	createSourceEntityLinks,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxSourcesType,
	idxSourcesStatus,
	idxSourcesCreated,
	idxSourceNotesCreated,
	idxEntityLinksName,
	idxEntityLinksCreated,
}

// quotedList renders vocabulary values as a SQL string list:
// 'paper', 'webpage', ...
func quotedList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
