// Link-entity command connects a source to a named concept.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	linkEntityName string
	linkRelation   string
	linkNotes      string
)

var linkEntityCmd = &cobra.Command{
	Use:   "link-entity SOURCE_ID",
	Short: "Link a source to a named concept",
	Long: `Link-entity records a typed relationship between a source and a
named concept. A source links to each entity at most once.

Example:
  stacks link-entity 6f1c... --entity "transformer architecture" --relation introduces
  stacks link-entity 6f1c... --entity "attention" --relation discusses --notes "section 3"`,
	Args: cobra.ExactArgs(1),
	RunE: runLinkEntity,
}

func init() {
	linkEntityCmd.Flags().StringVar(&linkEntityName, "entity", "", "name of the concept (required)")
	linkEntityCmd.Flags().StringVar(&linkRelation, "relation", "", "relation type: discusses, introduces, extends, evaluates, applies, or critiques (required)")
	linkEntityCmd.Flags().StringVar(&linkNotes, "notes", "", "optional notes about the relationship")
	_ = linkEntityCmd.MarkFlagRequired("entity")
	_ = linkEntityCmd.MarkFlagRequired("relation")
}

func runLinkEntity(cmd *cobra.Command, args []string) error {
	sourceID := args[0]

	if err := store.LinkToEntity(sourceID, linkEntityName, linkRelation, linkNotes); err != nil {
		return fmt.Errorf("link entity: %w", err)
	}

	return printSource(sourceID)
}
