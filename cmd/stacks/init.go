// Init command creates a new literature database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/sqlite"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the literature database",
	Long: `Init creates the literature database at the resolved path and fails
if a database already exists there.

Example:
  stacks init
  stacks init --db ./literature.db`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath()
	if err != nil {
		return err
	}

	if err := sqlite.CreateDatabase(dbPath); err != nil {
		return fmt.Errorf("create database: %w", err)
	}

	fmt.Printf("Created literature database at %s\n", dbPath)
	return nil
}
