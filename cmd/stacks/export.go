// Export command dumps the collection as YAML.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection as YAML",
	Long: `Export writes every source, with its notes and entity links, as a
YAML document to stdout or to a file.

Example:
  stacks export
  stacks export --output literature.yaml`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	out, err := store.ExportYAML()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if exportOutput == "" {
		fmt.Print(string(out))
		return nil
	}

	if err := os.WriteFile(exportOutput, out, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported collection to %s\n", exportOutput)
	return nil
}
