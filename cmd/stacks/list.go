// List command enumerates sources, newest first.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

var (
	listType   string
	listStatus string
	listLimit  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sources, newest first",
	Long: `List enumerates sources ordered by creation time, newest first,
with optional type and status filters.

Example:
  stacks list
  stacks list --type paper --status reading
  stacks list --limit 10`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "filter by source type")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by reading status")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results (default 50)")
}

func runList(cmd *cobra.Command, args []string) error {
	sources, err := store.ListSources(types.ListOptions{
		Type:   listType,
		Status: listStatus,
		Limit:  listLimit,
	})
	if err != nil {
		return fmt.Errorf("list sources: %w", err)
	}

	return printSummaries(sources)
}
