// Package cpp emits packed C++ declarations from a normalized binary type
// schema. Generated structs carry no inter-field padding, so the declared
// field order matches exact byte layout.
package cpp

import (
	"fmt"
	"os"
	"strings"

	"github.com/fudini/bender/errors"
	"github.com/fudini/bender/logger"
	"github.com/fudini/bender/schema"
	"github.com/fudini/bender/typegen"
)

// packedDirective disables implicit inter-field padding on emitted structs.
const packedDirective = "__attribute__((packed))"

// banner marks generated files. Output below it is fully deterministic.
const banner = "// Code generated by bender. DO NOT EDIT.\n// Regenerate with: bender generate\n"

// Generator implements typegen.Generator for C++
type Generator struct{}

// NewGenerator creates a new C++ generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "cpp"
func (g *Generator) Language() string {
	return "cpp"
}

// FileExtension returns "hpp"
func (g *Generator) FileExtension() string {
	return "hpp"
}

// GenerateFile renders the full declaration document for the type list
// (implements typegen.Generator). One pass, input order, blocks separated by
// a blank line. A union whose discriminator path fails to resolve aborts the
// call with no output.
func (g *Generator) GenerateFile(types []schema.TypeDefinition, opts typegen.Options) (string, error) {
	reg := schema.NewRegistry(types)
	mapper := newTypeMapper(opts.TypeMapping)

	blocks := make([]string, 0, len(types))
	for _, def := range types {
		var block string

		switch def.Kind {
		case schema.KindPrimitive:
			block = generatePrimitive(def, mapper)
		case schema.KindAlias:
			block = generateAlias(def, mapper)
		case schema.KindStruct:
			block = generateStruct(def, mapper, opts.Attribute)
		case schema.KindEnum:
			block = generateEnum(def, mapper, opts.Attribute)
		case schema.KindUnion:
			// Resolved for validation only; the emitted union does not
			// encode the discriminator
			if _, err := ResolveDiscriminator(def, reg); err != nil {
				return "", err
			}
			block = generateUnion(def, opts.Attribute)
		default:
			return "", errors.AssertionFailedf("unhandled kind %q for type %s", def.Kind, def.Name)
		}

		if block != "" {
			blocks = append(blocks, block)
		}
	}

	return banner + "\n" + strings.Join(blocks, "\n\n") + "\n", nil
}

// RenderTypes returns the generated C++ declarations as a single string.
// Pure: multiple calls are independent and safely parallel.
func RenderTypes(types []schema.TypeDefinition, opts typegen.Options) (string, error) {
	return NewGenerator().GenerateFile(types, opts)
}

// WriteTypes renders the declarations and persists them to destination,
// reporting the written location.
func WriteTypes(types []schema.TypeDefinition, destination string, opts typegen.Options) error {
	output, err := RenderTypes(types, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(destination, []byte(output), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", destination)
	}

	logger.Infow("Generated C++ type declarations",
		"destination", destination,
		"types", len(types))
	return nil
}

// generatePrimitive emits a comment only: built-in scalars need no
// declaration, and the ignored bookkeeping names must not produce one at all
// because their abstract name collides with a C++ keyword.
func generatePrimitive(def schema.TypeDefinition, m typeMapper) string {
	if ignoredPrimitives[def.Name] {
		return fmt.Sprintf("// skipped: %s (schema placeholder)", def.Name)
	}
	return fmt.Sprintf("// built-in type: %s (%s)", def.Name, m.resolve(def.Name))
}

// generateAlias emits a using-declaration for an alias entry.
func generateAlias(def schema.TypeDefinition, m typeMapper) string {
	return fmt.Sprintf("using %s = %s;", m.resolve(def.Name), m.resolve(def.Target))
}

// generateStruct emits a packed struct. Field order is preserved verbatim.
// Every struct declares a stream-insertion friend so downstream code can
// define debug printing without members that would break the packed layout.
func generateStruct(def schema.TypeDefinition, m typeMapper, attribute string) string {
	var sb strings.Builder

	if attribute != "" {
		sb.WriteString(attribute)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("struct %s {\n", def.Name))

	for _, field := range def.Fields {
		mapped := m.resolve(field.Type)
		if field.IsArray() {
			sb.WriteString(fmt.Sprintf("  %s %s[%d];\n", mapped, field.Name, field.Length))
		} else {
			sb.WriteString(fmt.Sprintf("  %s %s;\n", mapped, field.Name))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  friend std::ostream& operator<<(std::ostream& os, const %s& value);\n", def.Name))
	sb.WriteString(fmt.Sprintf("} %s;", packedDirective))

	return sb.String()
}

// generateEnum emits an enum class over the mapped underlying integer.
// Values are zero-padded hexadecimal at the underlying type's full storage
// width; the separator goes between entries, never before the first.
func generateEnum(def schema.TypeDefinition, m typeMapper, attribute string) string {
	var sb strings.Builder

	if attribute != "" {
		sb.WriteString(attribute)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("enum class %s: %s {\n", def.Name, m.resolve(def.Underlying)))

	digits := hexDigits(def.Underlying)
	for i, variant := range def.Variants {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(fmt.Sprintf("  %s = 0x%0*X", variant.Name, digits, variant.Value))
	}

	sb.WriteString("\n};")

	return sb.String()
}

// generateUnion emits a raw union: the language-level declaration does not
// encode the discriminator. Member fields are named by prefixing the member
// type name with "u".
func generateUnion(def schema.TypeDefinition, attribute string) string {
	var sb strings.Builder

	if attribute != "" {
		sb.WriteString(attribute)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("union %s {\n", def.Name))

	for _, member := range def.Members {
		sb.WriteString(fmt.Sprintf("  %s u%s;\n", member, member))
	}

	sb.WriteString("};")

	return sb.String()
}
