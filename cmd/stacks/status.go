// Update-status command moves a source to a new reading status.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateStatusCmd = &cobra.Command{
	Use:   "update-status SOURCE_ID STATUS",
	Short: "Update the reading status of a source",
	Long: `Update-status sets a source's reading status. Any status can move to
any other status.

Example:
  stacks update-status 6f1c... reading
  stacks update-status 6f1c... completed`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdateStatus,
}

func runUpdateStatus(cmd *cobra.Command, args []string) error {
	sourceID, status := args[0], args[1]

	if err := store.UpdateStatus(sourceID, status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	return printSource(sourceID)
}
