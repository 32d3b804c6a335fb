// Add-note command attaches a note to an existing source.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	noteTitle   string
	noteContent string
)

var addNoteCmd = &cobra.Command{
	Use:   "add-note SOURCE_ID",
	Short: "Add a note to a source",
	Long: `Add-note attaches a titled note to an existing source. Note titles
are unique per source.

Example:
  stacks add-note 6f1c... --title "Key Insights" --content "Eliminates recurrence."`,
	Args: cobra.ExactArgs(1),
	RunE: runAddNote,
}

func init() {
	addNoteCmd.Flags().StringVar(&noteTitle, "title", "", "title of the note (required)")
	addNoteCmd.Flags().StringVar(&noteContent, "content", "", "content of the note (required)")
	_ = addNoteCmd.MarkFlagRequired("title")
	_ = addNoteCmd.MarkFlagRequired("content")
}

func runAddNote(cmd *cobra.Command, args []string) error {
	sourceID := args[0]

	if err := store.AddNote(sourceID, noteTitle, noteContent); err != nil {
		return fmt.Errorf("add note: %w", err)
	}

	return printSource(sourceID)
}
