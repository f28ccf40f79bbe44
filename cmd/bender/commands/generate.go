package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fudini/bender/config"
	"github.com/fudini/bender/errors"
	"github.com/fudini/bender/schema"
	"github.com/fudini/bender/typegen"
	"github.com/fudini/bender/typegen/cpp"
)

var (
	generateSchema    string
	generateOutput    string
	generateAttribute string
	generateWatch     bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate C++ type declarations from the schema",
	Long: `Generate packed C++ type declarations from a normalized schema document.

This command reads the schema and emits corresponding declarations. It
handles:
  - Struct types → packed structs (no inter-field padding)
  - Enum types → enum class over the underlying fixed-width integer
  - Alias types → using-declarations
  - Union types → raw unions, discriminator paths validated
  - Fixed-size array fields → C array members

Examples:
  bender generate                             # Render to stdout
  bender generate --output include/types.hpp  # Write to a file
  bender generate --schema protocol.yaml      # Explicit schema document
  bender generate --watch                     # Regenerate on schema changes`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateSchema, "schema", "s", "", "Schema document (default: from bender.toml)")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	GenerateCmd.Flags().StringVarP(&generateAttribute, "attribute", "a", "", "Decoration prepended to struct/enum/union declarations")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Watch the schema file and regenerate on change")
}

// resolveGenerateConfig layers CLI flags over the project configuration
func resolveGenerateConfig() (schemaPath, output string, opts typegen.Options, err error) {
	cfg, err := config.Load()
	if err != nil {
		return "", "", typegen.Options{}, errors.Wrap(err, "failed to load configuration")
	}

	schemaPath = cfg.Schema
	if generateSchema != "" {
		schemaPath = generateSchema
	}

	output = cfg.Output
	if generateOutput != "" {
		output = generateOutput
	}

	opts = typegen.Options{
		TypeMapping: cfg.Generator.TypeMapping,
		Attribute:   cfg.Generator.Attribute,
	}
	if generateAttribute != "" {
		opts.Attribute = generateAttribute
	}

	return schemaPath, output, opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	schemaPath, output, opts, err := resolveGenerateConfig()
	if err != nil {
		return err
	}

	types, err := schema.LoadFile(schemaPath)
	if err != nil {
		return errors.Wrap(err, "failed to load schema")
	}

	if err := emit(types, output, opts); err != nil {
		return err
	}

	if !generateWatch {
		return nil
	}

	return watchAndRegenerate(schemaPath, output, opts)
}

// emit renders the declarations and writes them to the output file, or to
// stdout when no output is configured
func emit(types []schema.TypeDefinition, output string, opts typegen.Options) error {
	if output == "" {
		rendered, err := cpp.RenderTypes(types, opts)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	}

	if err := cpp.WriteTypes(types, output, opts); err != nil {
		return err
	}

	pterm.Printf("✓ Generated %s (%s types)\n", output, pterm.Green(fmt.Sprintf("%d", len(types))))
	return nil
}

// watchAndRegenerate blocks, re-running emission each time the schema file
// changes, until interrupted
func watchAndRegenerate(schemaPath, output string, opts typegen.Options) error {
	watcher, err := schema.NewWatcher(schemaPath)
	if err != nil {
		return errors.Wrap(err, "failed to watch schema")
	}
	defer watcher.Stop()

	watcher.OnChange(func(types []schema.TypeDefinition) error {
		if err := emit(types, output, opts); err != nil {
			pterm.Error.Printf("Regeneration failed: %v\n", err)
			return err
		}
		return nil
	})
	watcher.Start()

	pterm.Info.Printf("Watching %s for changes (Ctrl+C to stop)\n", schemaPath)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
