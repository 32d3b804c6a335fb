// Package main provides the stacks CLI, a command-line front end for the
// literature store. Commands are thin pass-throughs: they parse flags,
// call the store, and render results; all validation lives in the store.
// See docs/ARCHITECTURE.md § CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/sqlite"
	"github.com/mesh-intelligence/stacks/pkg/types"
)

// version is the CLI version string printed by the version command.
const version = "stacks v0.1.0"

// Exit codes: 1 for user errors, 2 when the store itself is unusable.
const (
	exitUserError = 1
	exitSysError  = 2
)

var (
	// configDirFlag is set by the --config-dir flag.
	configDirFlag string

	// dbPathFlag is set by the --db flag.
	dbPathFlag string

	// jsonOutput is set by the --json flag.
	jsonOutput bool

	// store is the global store instance, initialized on startup for
	// every command that needs one.
	store types.Store
)

func main() {
	// Execute prints the error itself; only the exit code is decided here.
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, types.ErrStoreUnavailable) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stacks",
	Short: "Stacks is a personal literature tracker",
	Long: `Stacks tracks sources you are reading (papers, webpages, books,
videos, blogs) together with your notes, reading statuses, and links
from sources to the concepts they discuss.`,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage:      true,
	PersistentPreRunE: initStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "database file (default: from config, env, or platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addSourceCmd)
	rootCmd.AddCommand(addNoteCmd)
	rootCmd.AddCommand(updateStatusCmd)
	rootCmd.AddCommand(linkEntityCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

// initStore resolves the database path and opens the store. The version
// and init commands run without an existing database and skip this.
func initStore(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "init", "help", "completion":
		return nil
	}

	dbPath, err := resolveDBPath()
	if err != nil {
		return err
	}

	s, err := sqlite.New(types.Config{DBPath: dbPath})
	if err != nil {
		return fmt.Errorf("open store: %w (run 'stacks init' to create the database)", err)
	}

	store = s
	return nil
}
