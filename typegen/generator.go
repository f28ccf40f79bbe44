// Package typegen generates target-language type declarations from a
// normalized binary type schema.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. Language-agnostic schema model (the schema package) describes the types
//  2. Language-specific generators (cpp/, ...) format the declarations
//
// This separation allows adding new target languages without duplicating the
// schema model or the discriminator validation logic.
//
// # Design Decisions
//
// - Generators implement a common interface for extensibility
// - Output order matches schema order exactly, so generation is deterministic
//   and CI can validate generated files via git diff
// - A mapping table is built per call by layering caller overrides onto
//   built-in defaults; no process-wide mutable state
//
// # Implementing a New Generator
//
// To add support for a new language (e.g., Rust):
//
//  1. Create package: typegen/rust/generator.go
//  2. Implement the Generator interface (see below)
//  3. Register the language in cmd/bender/commands/generate.go
package typegen

import "github.com/fudini/bender/schema"

// Options control declaration formatting. The zero value is valid.
type Options struct {
	// TypeMapping overrides how abstract type names are spelled in the
	// target language. Entries take precedence, per name, over the
	// generator's default conventions. The built-in fixed-width integer
	// table is not overridable.
	TypeMapping map[string]string

	// Attribute is a target-language decoration (visibility or alignment
	// annotation) prepended verbatim before struct/enum/union declarations.
	Attribute string
}

// Generator defines the interface for language-specific type generators.
type Generator interface {
	// GenerateFile renders the full declaration document for the type list,
	// in input order, wrapped with a generated-file banner. A discriminator
	// path that fails to resolve aborts the whole call: no partial output.
	GenerateFile(types []schema.TypeDefinition, opts Options) (string, error)

	// FileExtension returns the file extension for this language (e.g., "hpp")
	FileExtension() string

	// Language returns the language name (e.g., "cpp")
	Language() string
}
