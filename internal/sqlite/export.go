// Collection export for backup and sharing.

package sqlite

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// exportListLimit bounds the listing pass during export. It is far above
// any realistic personal collection size.
const exportListLimit = 1_000_000

// exportDocument is the YAML layout written by ExportYAML.
type exportDocument struct {
	Sources []*types.Source `yaml:"sources"`
}

// ExportYAML renders the whole collection as a YAML document: every
// source aggregate with its notes and entity links, ordered by creation
// time descending.
func (s *Store) ExportYAML() ([]byte, error) {
	summaries, err := s.ListSources(types.ListOptions{Limit: exportListLimit})
	if err != nil {
		return nil, err
	}

	doc := exportDocument{Sources: make([]*types.Source, 0, len(summaries))}
	for _, sum := range summaries {
		src, err := s.GetSourceByID(sum.ID)
		if err != nil {
			return nil, err
		}
		if src == nil {
			// Listed a moment ago; deleted out from under us.
			continue
		}
		doc.Sources = append(doc.Sources, src)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling export: %w", err)
	}
	return out, nil
}
