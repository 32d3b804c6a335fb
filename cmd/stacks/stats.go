// Stats command prints aggregate collection statistics.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Long: `Stats prints totals for sources, notes, and entity links, plus
per-type and per-status source counts.

Example:
  stacks stats
  stacks stats --json`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	if jsonOutput {
		return printJSON(stats)
	}

	fmt.Printf("Sources:      %d\n", stats.TotalSources)
	fmt.Printf("Notes:        %d\n", stats.TotalNotes)
	fmt.Printf("Entity links: %d\n", stats.TotalEntityLinks)

	printCounts("By type", stats.SourcesByType)
	printCounts("By status", stats.SourcesByStatus)
	return nil
}

// printCounts prints a labeled count map in key order.
func printCounts(label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("\n%s:\n", label)
	for _, k := range keys {
		fmt.Printf("  %-12s %d\n", k, counts[k])
	}
}
