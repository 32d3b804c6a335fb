package types

// ListOptions holds the optional equality filters and result cap for
// ListSources. Zero values mean "no filter" and "default limit".
type ListOptions struct {
	Type   string
	Status string
	Limit  int
}

// Store is the interface for the literature store. It covers every
// persistent operation: source registration with duplicate detection,
// lookups, reading-status updates, notes, entity links, filtered
// listing, and aggregate statistics.
//
// Lookup methods (FindSourceByIdentifier, GetSourceByID) return a nil
// source with a nil error when nothing matches. Mutations targeting a
// missing source return an error wrapping ErrNotFound.
type Store interface {
	// AddSource persists a new source and returns its generated ID.
	AddSource(title, sourceType, identifierType, identifierValue string) (string, error)

	// FindSourceByIdentifier looks a source up by exact type and exact
	// identifier value under the given identifier type key. An empty
	// sourceType matches any type.
	FindSourceByIdentifier(identifierType, identifierValue, sourceType string) (*Source, error)

	// GetSourceByID returns the full aggregate for a source, including
	// its notes and entity links.
	GetSourceByID(sourceID string) (*Source, error)

	// UpdateStatus sets a source's reading status.
	UpdateStatus(sourceID, newStatus string) error

	// AddNote attaches a titled note to a source.
	AddNote(sourceID, noteTitle, noteContent string) error

	// LinkToEntity records a typed relationship between a source and a
	// named concept.
	LinkToEntity(sourceID, entityName, relationType, notes string) error

	// ListSources returns source summaries ordered by creation time
	// descending.
	ListSources(opts ListOptions) ([]SourceSummary, error)

	// Stats returns aggregate counts for the collection.
	Stats() (*Stats, error)

	// ExportYAML renders the whole collection as a YAML document.
	ExportYAML() ([]byte, error)
}
