// Search command ranks sources by how well their titles match a query.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/internal/search"
	"github.com/mesh-intelligence/stacks/pkg/types"
)

// searchScanLimit caps how many summaries are pulled before ranking in
// memory.
const searchScanLimit = 1000

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Search sources by title",
	Long: `Search ranks sources by title match quality: exact matches first,
then substring matches, then word-overlap matches.

Example:
  stacks search transformers
  stacks search attention is all you need --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	sources, err := store.ListSources(types.ListOptions{Limit: searchScanLimit})
	if err != nil {
		return fmt.Errorf("list sources: %w", err)
	}

	results := search.ByTitle(sources, query)
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	return printSummaries(results)
}
