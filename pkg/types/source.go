package types

import "time"

// Source represents a tracked literature item.
type Source struct {
	// ID is a UUID, generated on creation. Never reused.
	ID string `json:"id" yaml:"id"`

	// Title is the human-readable title (required, non-empty).
	Title string `json:"title" yaml:"title"`

	// Type is the source type (one of the Source* constants). Fixed at
	// creation; no operation retypes a source.
	Type string `json:"type" yaml:"type"`

	// Identifiers maps identifier type to identifier value. Creation seeds
	// exactly one entry; the mapping shape allows more over time.
	Identifiers map[string]string `json:"identifiers" yaml:"identifiers"`

	// Status is the reading status (one of the Status* constants).
	Status string `json:"status" yaml:"status"`

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Notes holds the source's notes, most recent first. Populated only by
	// full retrieval.
	Notes []Note `json:"notes,omitempty" yaml:"notes,omitempty"`

	// EntityLinks holds the source's entity links in insertion order.
	// Populated only by full retrieval.
	EntityLinks []EntityLink `json:"entity_links,omitempty" yaml:"entity_links,omitempty"`
}

// SourceSummary is the lightweight listing projection of a source, without
// notes, links, or identifiers.
type SourceSummary struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Type      string    `json:"type" yaml:"type"`
	Status    string    `json:"status" yaml:"status"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Stats holds aggregate counts over the whole store. Computed fresh on every
// request; nothing here is cached.
type Stats struct {
	TotalSources     int            `json:"total_sources"`
	TotalNotes       int            `json:"total_notes"`
	TotalEntityLinks int            `json:"total_entity_links"`
	SourcesByType    map[string]int `json:"sources_by_type"`
	SourcesByStatus  map[string]int `json:"sources_by_status"`
}
