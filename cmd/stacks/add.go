// Add-source command registers a new source.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/internal/search"
)

var (
	addTitle       string
	addType        string
	addIDType      string
	addIDValue     string
	addNoteTitle   string
	addNoteContent string
)

var addSourceCmd = &cobra.Command{
	Use:   "add-source",
	Short: "Add a new source to the collection",
	Long: `Add-source registers a source with a title, a type, and a primary
identifier. New sources start with status "unread". An initial note can
be attached in the same invocation. When --type is omitted, the type is
guessed from the identifier type and the title.

Example:
  stacks add-source --title "Attention Is All You Need" --type paper --id-type arxiv --id 1706.03762
  stacks add-source --title "Deep Learning" --type book --id-type isbn --id 978-0262035613 \
    --note-title "First Impression" --note-content "Comprehensive textbook."`,
	RunE: runAddSource,
}

func init() {
	addSourceCmd.Flags().StringVar(&addTitle, "title", "", "title of the source (required)")
	addSourceCmd.Flags().StringVar(&addType, "type", "", "source type: paper, webpage, book, video, or blog (default: guessed from the identifier and title)")
	addSourceCmd.Flags().StringVar(&addIDType, "id-type", "", "identifier type: arxiv, doi, isbn, url, or semantic_scholar (required)")
	addSourceCmd.Flags().StringVar(&addIDValue, "id", "", "identifier value (required)")
	addSourceCmd.Flags().StringVar(&addNoteTitle, "note-title", "", "title for an initial note")
	addSourceCmd.Flags().StringVar(&addNoteContent, "note-content", "", "content for an initial note")
	_ = addSourceCmd.MarkFlagRequired("title")
	_ = addSourceCmd.MarkFlagRequired("id-type")
	_ = addSourceCmd.MarkFlagRequired("id")
}

func runAddSource(cmd *cobra.Command, args []string) error {
	if addType == "" {
		addType = search.GuessSourceType(addTitle, addIDType)
	}

	// Surface all field problems at once before hitting the store; the
	// store re-validates on insert.
	if errs := search.ValidateSourceInput(search.SourceInput{
		Title:           addTitle,
		SourceType:      addType,
		IdentifierType:  addIDType,
		IdentifierValue: addIDValue,
	}); len(errs) > 0 {
		return fmt.Errorf("invalid source:\n  %s", strings.Join(errs, "\n  "))
	}

	id, err := store.AddSource(addTitle, addType, addIDType, addIDValue)
	if err != nil {
		return fmt.Errorf("add source: %w", err)
	}

	if addNoteTitle != "" && addNoteContent != "" {
		if err := store.AddNote(id, addNoteTitle, addNoteContent); err != nil {
			return fmt.Errorf("source %s created, but initial note failed: %w", id, err)
		}
	}

	return printSource(id)
}
