package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fudini/bender/errors"
	"github.com/fudini/bender/schema"
	"github.com/fudini/bender/typegen"
	"github.com/fudini/bender/typegen/cpp"
)

// CheckCmd checks if generated declarations are up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated declarations are up to date",
	Long: `Check if the generated declarations match the current schema.

This command renders the declarations in memory and compares them with the
configured output file. Generation is deterministic, so any byte difference
means the file is stale.

Exit codes:
  0 - Declarations are up to date
  1 - Declarations are out of date, or the check itself failed

Examples:
  bender check                      # Check the configured output file
  bender check -o include/types.hpp # Check an explicit file`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&generateSchema, "schema", "s", "", "Schema document (default: from bender.toml)")
	CheckCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Generated file to check (default: from bender.toml)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	schemaPath, output, opts, err := resolveGenerateConfig()
	if err != nil {
		return err
	}
	if output == "" {
		return errors.New("check needs an output file: set output in bender.toml or pass --output")
	}

	types, err := schema.LoadFile(schemaPath)
	if err != nil {
		return errors.Wrap(err, "failed to load schema")
	}

	rendered, err := cpp.RenderTypes(types, opts)
	if err != nil {
		return errors.Wrap(err, "failed to render declarations")
	}

	result, err := typegen.Compare(map[string]string{output: rendered})
	if err != nil {
		return errors.Wrap(err, "failed to compare output")
	}

	if result.UpToDate {
		pterm.Success.Println("Declarations are up to date")
		return nil
	}

	pterm.Error.Println("Declarations are out of date:")
	for _, file := range result.Differences {
		pterm.Printf("  - %s\n", file)
	}

	return errors.New("declarations are out of date - run 'bender generate' to update")
}
