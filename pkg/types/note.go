package types

import "time"

// Note is a free-text note attached to a source. Notes are identified by
// (source ID, title); titles are unique per source, not globally. Notes are
// created once and never updated or deleted.
type Note struct {
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
