// Note operations. Notes are append-only: created once, never updated or
// deleted, and listed most recent first.

package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// AddNote attaches a note to an existing source. Note titles are unique per
// source, not globally: re-adding a title that the source already carries
// fails with a ConflictError, while the same title on a different source is
// fine.
func (s *Store) AddNote(sourceID, noteTitle, content string) error {
	if noteTitle == "" {
		return &types.ValidationError{Field: "note title"}
	}
	if content == "" {
		return &types.ValidationError{Field: "note content"}
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
		"SELECT 1 FROM source_notes WHERE source_id = ? AND note_title = ?",
		sourceID, noteTitle,
	).Scan(&one)
	if err == nil {
		return &types.ConflictError{Subject: "note", Key: noteTitle, ExistingID: sourceID}
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking note existence: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO source_notes (source_id, note_title, content, created_at) VALUES (?, ?, ?, ?)",
		sourceID, noteTitle, content, now(),
	)
	if err != nil {
		return fmt.Errorf("adding note: %w", err)
	}

	return nil
}

// fetchNotes loads a source's notes ordered by creation time descending.
func fetchNotes(db *sql.DB, sourceID string) ([]types.Note, error) {
	rows, err := db.Query(
		`SELECT note_title, content, created_at
         FROM source_notes
         WHERE source_id = ?
         ORDER BY created_at DESC`,
		sourceID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	notes := []types.Note{}
	for rows.Next() {
		var n types.Note
		var createdAt string
		if err := rows.Scan(&n.Title, &n.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	return notes, nil
}
