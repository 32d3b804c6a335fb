package types

import (
	"errors"
	"fmt"
)

// Store operation errors.
var (
	// ErrNotFound reports that a mutation referenced a source ID with no
	// matching row. Lookups signal absence with a nil result instead.
	ErrNotFound = errors.New("source not found")

	// ErrStoreUnavailable reports that the store file cannot be opened or
	// does not hold an initialized schema.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports a value outside its closed vocabulary or a
// missing required field. Detected before any write.
type ValidationError struct {
	Field string // which field failed (e.g. "source type")
	Value string // the offending value; empty when the field was missing
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("missing required field: %s", e.Field)
	}
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ConflictError reports that a uniqueness invariant would be violated:
// a duplicate source identity, a duplicate note title within a source, or a
// duplicate entity link within a source.
type ConflictError struct {
	Subject    string // "source", "note", or "entity link"
	Key        string // the conflicting identity (identifier value, note title, entity name)
	ExistingID string // ID of the source already holding the identity
}

func (e *ConflictError) Error() string {
	switch e.Subject {
	case "source":
		return fmt.Sprintf("source already exists with ID %s", e.ExistingID)
	case "note":
		return fmt.Sprintf("note %q already exists for source %s", e.Key, e.ExistingID)
	default:
		return fmt.Sprintf("%s %q already exists for source %s", e.Subject, e.Key, e.ExistingID)
	}
}
