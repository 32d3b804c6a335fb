package types

import "time"

// EntityLink is a typed relationship from a source to a named concept.
// A source links to a given entity name at most once. Entities have no
// record of their own; they exist only as the strings links reference.
type EntityLink struct {
	EntityName   string    `json:"entity_name" yaml:"entity_name"`
	RelationType string    `json:"relation_type" yaml:"relation_type"`
	Notes        string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}
