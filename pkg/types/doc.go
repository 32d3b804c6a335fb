// Package types defines the literature entities, the four closed
// vocabularies (source type, identifier type, status, relation type), the
// store error taxonomy, and the store configuration.
// See docs/ARCHITECTURE.md § Data Model.
package types
