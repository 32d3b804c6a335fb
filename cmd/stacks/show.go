// Show command displays a single source with its notes and entity links.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	showIDType  string
	showIDValue string
	showType    string
)

var showCmd = &cobra.Command{
	Use:   "show [SOURCE_ID]",
	Short: "Show full details for a source",
	Long: `Show displays a source together with its notes and entity links.
The source is addressed either by its ID or by an identifier.

Example:
  stacks show 6f1c...
  stacks show --id-type arxiv --id 1706.03762
  stacks show --id-type url --id https://example.com/post --type blog`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showIDType, "id-type", "", "identifier type to look up by")
	showCmd.Flags().StringVar(&showIDValue, "id", "", "identifier value to look up by")
	showCmd.Flags().StringVar(&showType, "type", "", "restrict the identifier lookup to a source type")
}

func runShow(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return printSource(args[0])
	}

	if showIDType == "" || showIDValue == "" {
		return fmt.Errorf("provide a SOURCE_ID argument or both --id-type and --id")
	}

	src, err := store.FindSourceByIdentifier(showIDType, showIDValue, showType)
	if err != nil {
		return fmt.Errorf("find source: %w", err)
	}
	if src == nil {
		return fmt.Errorf("no source found with %s %q", showIDType, showIDValue)
	}

	return printSource(src.ID)
}
