// Mcp command serves the literature store to agents over stdio.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP tool server on stdio",
	Long: `Mcp runs a Model Context Protocol server over stdin/stdout, exposing
the literature store as tools for agents. The process serves until the
client disconnects.

Example:
  stacks mcp
  stacks mcp --db ./literature.db`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	server := mcp.NewServer(store)
	if err := server.Run(cmd.Context()); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
