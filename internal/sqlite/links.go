// Entity link operations. An entity is a free-text concept label with no
// record of its own; links are the only place entity names live.

package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// LinkToEntity records a typed relationship from a source to a named
// entity. A source may link to a given entity name at most once; notes is
// an optional annotation on the relationship and may be empty.
func (s *Store) LinkToEntity(sourceID, entityName, relationType, notes string) error {
	if entityName == "" {
		return &types.ValidationError{Field: "entity name"}
	}
	if !types.ValidRelationType(relationType) {
		return &types.ValidationError{Field: "relation type", Value: relationType}
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	exists, err := sourceExists(db, sourceID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", types.ErrNotFound, sourceID)
	}

	var one int
	err = db.QueryRow(
		"SELECT 1 FROM source_entity_links WHERE source_id = ? AND entity_name = ?",
		sourceID, entityName,
	).Scan(&one)
	if err == nil {
		return &types.ConflictError{Subject: "entity link", Key: entityName, ExistingID: sourceID}
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking link existence: %w", err)
	}

	linkNotes := sql.NullString{String: notes, Valid: notes != ""}
	_, err = db.Exec(
		"INSERT INTO source_entity_links (source_id, entity_name, relation_type, notes, created_at) VALUES (?, ?, ?, ?, ?)",
		sourceID, entityName, relationType, linkNotes, now(),
	)
	if err != nil {
		return fmt.Errorf("creating entity link: %w", err)
	}

	return nil
}

// fetchEntityLinks loads a source's links in insertion order. The primary
// key index answers the source_id predicate sorted by entity name, so the
// creation-time ordering must be explicit.
func fetchEntityLinks(db *sql.DB, sourceID string) ([]types.EntityLink, error) {
	rows, err := db.Query(
		`SELECT entity_name, relation_type, notes, created_at
         FROM source_entity_links
         WHERE source_id = ?
         ORDER BY created_at`,
		sourceID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying entity links: %w", err)
	}
	defer rows.Close()

	links := []types.EntityLink{}
	for rows.Next() {
		var l types.EntityLink
		var notes sql.NullString
		var createdAt string
		if err := rows.Scan(&l.EntityName, &l.RelationType, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning entity link: %w", err)
		}
		l.Notes = notes.String
		if l.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entity links: %w", err)
	}

	return links, nil
}
