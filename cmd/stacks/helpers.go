// Shared output helpers for stacks CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/stacks/internal/search"
	"github.com/mesh-intelligence/stacks/pkg/types"
)

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printSource fetches the full source aggregate and renders it, either as
// JSON or as a readable summary.
func printSource(sourceID string) error {
	src, err := store.GetSourceByID(sourceID)
	if err != nil {
		return fmt.Errorf("get source: %w", err)
	}
	if src == nil {
		return fmt.Errorf("no source found with ID %s", sourceID)
	}

	if jsonOutput {
		return printJSON(src)
	}

	fmt.Println(search.FormatSummary(src))
	return nil
}

// printSummaries renders a list of source summaries, one per line, or as
// JSON when requested.
func printSummaries(sources []types.SourceSummary) error {
	if jsonOutput {
		return printJSON(sources)
	}

	if len(sources) == 0 {
		fmt.Println("No sources found")
		return nil
	}

	for _, s := range sources {
		fmt.Printf("%s  [%s/%s]  %s\n", s.ID, s.Type, s.Status, s.Title)
	}
	return nil
}
