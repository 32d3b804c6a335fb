// Source operations: creation with duplicate detection, identifier lookup,
// full retrieval, status updates, and filtered listing.

package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// defaultListLimit caps ListSources results when the caller does not supply
// a positive limit.
const defaultListLimit = 50

// AddSource persists a new source and returns its generated ID. The pair
// (type, identifier type, identifier value) is the source's logical
// identity: if a source with the same identity already exists, AddSource
// fails with a ConflictError carrying the existing ID. The new source gets
// status "unread" and a single identifiers entry.
func (s *Store) AddSource(title, sourceType, identifierType, identifierValue string) (string, error) {
	if title == "" {
		return "", &types.ValidationError{Field: "title"}
	}
	if !types.ValidSourceType(sourceType) {
		return "", &types.ValidationError{Field: "source type", Value: sourceType}
	}
	if !types.ValidIdentifierType(identifierType) {
		return "", &types.ValidationError{Field: "identifier type", Value: identifierType}
	}
	if identifierValue == "" {
		return "", &types.ValidationError{Field: "identifier value"}
	}

	existing, err := s.FindSourceByIdentifier(identifierType, identifierValue, sourceType)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", &types.ConflictError{
			Subject:    "source",
			Key:        identifierValue,
			ExistingID: existing.ID,
		}
	}

	identifiers, err := json.Marshal(map[string]string{identifierType: identifierValue})
	if err != nil {
		return "", fmt.Errorf("marshaling identifiers: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return "", err
	}
	defer db.Close()

	id := uuid.New().String()
	_, err = db.Exec(
		"INSERT INTO sources (id, title, type, identifiers, status, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, title, sourceType, string(identifiers), types.StatusUnread, now(),
	)
	if err != nil {
		return "", fmt.Errorf("adding source: %w", err)
	}

	return id, nil
}

// FindSourceByIdentifier looks up a source by exact type and exact
// identifier value under the given identifier type key. An empty sourceType
// matches any type; if several types carry the same identifier value, one
// of them is returned. The result is the minimal projection (ID, title,
// type, identifiers, status); notes, links, and the creation timestamp are
// not populated. A nil result with nil error means no source matches.
func (s *Store) FindSourceByIdentifier(identifierType, identifierValue, sourceType string) (*types.Source, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `SELECT id, title, type, identifiers, status
         FROM sources
         WHERE json_extract(identifiers, ?) = ?`
	args := []any{"$." + identifierType, identifierValue}
	if sourceType != "" {
		query += " AND type = ?"
		args = append(args, sourceType)
	}

	var src types.Source
	var identifiersJSON string
	err = db.QueryRow(query, args...).
		Scan(&src.ID, &src.Title, &src.Type, &identifiersJSON, &src.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding source by identifier: %w", err)
	}

	if err := json.Unmarshal([]byte(identifiersJSON), &src.Identifiers); err != nil {
		return nil, fmt.Errorf("parsing identifiers: %w", err)
	}
	return &src, nil
}

// GetSourceByID returns the full aggregate for a source: its fields, its
// notes ordered most recent first, and its entity links in insertion order.
// A nil result with nil error means no source has that ID.
func (s *Store) GetSourceByID(sourceID string) (*types.Source, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var src types.Source
	var identifiersJSON, createdAt string
	err = db.QueryRow(
		"SELECT id, title, type, identifiers, status, created_at FROM sources WHERE id = ?",
		sourceID,
	).Scan(&src.ID, &src.Title, &src.Type, &identifiersJSON, &src.Status, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting source %s: %w", sourceID, err)
	}

	if err := json.Unmarshal([]byte(identifiersJSON), &src.Identifiers); err != nil {
		return nil, fmt.Errorf("parsing identifiers: %w", err)
	}
	if src.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}

	if src.Notes, err = fetchNotes(db, sourceID); err != nil {
		return nil, err
	}
	if src.EntityLinks, err = fetchEntityLinks(db, sourceID); err != nil {
		return nil, err
	}

	return &src, nil
}

// UpdateStatus sets a source's reading status. Any status may move to any
// other; there is no transition graph. A missing source is detected from
// the zero-rows-affected outcome of the update, not a prior lookup.
func (s *Store) UpdateStatus(sourceID, newStatus string) error {
	if !types.ValidStatus(newStatus) {
		return &types.ValidationError{Field: "status", Value: newStatus}
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := db.Exec("UPDATE sources SET status = ? WHERE id = ?", newStatus, sourceID)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", types.ErrNotFound, sourceID)
	}

	return nil
}

// ListSources returns lightweight source summaries ordered by creation time
// descending. Each supplied filter is validated against its vocabulary
// independently. Callers needing notes or links follow up with
// GetSourceByID per item.
func (s *Store) ListSources(opts types.ListOptions) ([]types.SourceSummary, error) {
	query := "SELECT id, title, type, status, created_at FROM sources"
	var conditions []string
	var args []any

	if opts.Type != "" {
		if !types.ValidSourceType(opts.Type) {
			return nil, &types.ValidationError{Field: "source type", Value: opts.Type}
		}
		conditions = append(conditions, "type = ?")
		args = append(args, opts.Type)
	}
	if opts.Status != "" {
		if !types.ValidStatus(opts.Status) {
			return nil, &types.ValidationError{Field: "status", Value: opts.Status}
		}
		conditions = append(conditions, "status = ?")
		args = append(args, opts.Status)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	defer rows.Close()

	summaries := []types.SourceSummary{}
	for rows.Next() {
		var sum types.SourceSummary
		var createdAt string
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.Type, &sum.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning source summary: %w", err)
		}
		if sum.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sources: %w", err)
	}

	return summaries, nil
}
