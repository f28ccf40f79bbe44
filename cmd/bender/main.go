package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fudini/bender/cmd/bender/commands"
	"github.com/fudini/bender/logger"
)

var rootCmd = &cobra.Command{
	Use:   "bender",
	Short: "bender - Layout-compatible type declarations from a binary schema",
	Long: `bender - Schema-driven binary type emitter.

bender reads a normalized binary type schema (primitives, aliases, packed
structs, enums, tagged unions) and emits layout-compatible C++ declarations,
so a single source-of-truth schema replaces hand-duplicated struct
definitions.

Available commands:
  generate - Emit type declarations from the schema
  check    - Verify generated declarations are up to date
  version  - Show build information

Examples:
  bender generate                       # Render to stdout
  bender generate -o include/types.hpp  # Write to a file
  bender generate --watch               # Regenerate on schema changes
  bender check                          # CI staleness gate`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.InitializeWithLevel(jsonLogs, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON instead of console output")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
