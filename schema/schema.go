// Package schema defines the normalized binary type model consumed by the
// generators.
//
// A schema is an ordered list of TypeDefinition entries produced by an
// upstream normalizer. The list is treated as immutable input for a single
// generation pass: names are unique and cross-references resolve, with the
// sole exception of union discriminator paths, which the generators validate
// themselves.
package schema

// Kind is the tag distinguishing the five type definition categories.
type Kind string

const (
	// KindPrimitive is a built-in scalar understood natively by every target
	KindPrimitive Kind = "primitive"

	// KindAlias declares a name as a synonym for another type's representation
	KindAlias Kind = "alias"

	// KindStruct is a fixed-layout aggregate with no inter-field padding
	KindStruct Kind = "struct"

	// KindEnum is a named set of integer values stored as an integer primitive
	KindEnum Kind = "enum"

	// KindUnion is a tagged union whose members overlay the same storage
	KindUnion Kind = "union"
)

// Kinds lists every valid kind tag, in declaration order.
var Kinds = []Kind{KindPrimitive, KindAlias, KindStruct, KindEnum, KindUnion}

// Valid reports whether k is one of the five known kind tags.
func (k Kind) Valid() bool {
	switch k {
	case KindPrimitive, KindAlias, KindStruct, KindEnum, KindUnion:
		return true
	}
	return false
}

// Field is a single struct member. Length > 0 makes the field a fixed-size
// array of Length elements of Type instead of a scalar.
type Field struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Length int    `yaml:"length,omitempty"`
}

// IsArray reports whether the field carries a fixed array length.
func (f Field) IsArray() bool {
	return f.Length > 0
}

// Variant is a single named enum value.
type Variant struct {
	Name  string `yaml:"name"`
	Value uint64 `yaml:"value"`
}

// TypeDefinition is one entry of the normalized type list. Kind selects which
// of the remaining fields are meaningful:
//
//	KindPrimitive: Name
//	KindAlias:     Name, Target
//	KindStruct:    Name, Fields
//	KindEnum:      Name, Underlying, Variants
//	KindUnion:     Name, DiscriminatorPath, Members
type TypeDefinition struct {
	Kind Kind   `yaml:"kind"`
	Name string `yaml:"name"`

	// Target names the aliased type (KindAlias)
	Target string `yaml:"target,omitempty"`

	// Fields are the ordered struct members (KindStruct). Order is emitted
	// verbatim: packed semantics, no reordering.
	Fields []Field `yaml:"fields,omitempty"`

	// Underlying names the integer primitive an enum's values are stored as
	// (KindEnum). It bounds the legal value range and the hexadecimal padding
	// width in emitted output.
	Underlying string `yaml:"underlying,omitempty"`

	// Variants are the ordered enum values (KindEnum)
	Variants []Variant `yaml:"variants,omitempty"`

	// DiscriminatorPath identifies, by traversal through nested structs,
	// the field that indicates a union's active member (KindUnion)
	DiscriminatorPath []string `yaml:"discriminator,omitempty"`

	// Members are the struct type names overlaid by a union (KindUnion)
	Members []string `yaml:"members,omitempty"`
}

// FieldByName returns the struct field with the given name.
func (d TypeDefinition) FieldByName(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Registry maps type names to their definitions for cross-reference lookup.
// Built once from the normalized list and never mutated afterwards.
type Registry map[string]TypeDefinition

// NewRegistry indexes the type list by name. Name uniqueness is the
// normalizer's contract; a duplicate silently keeps the later entry.
func NewRegistry(types []TypeDefinition) Registry {
	reg := make(Registry, len(types))
	for _, def := range types {
		reg[def.Name] = def
	}
	return reg
}

// Lookup returns the definition registered under name. The boolean makes
// every cross-reference lookup an explicit present/absent decision at the
// call site.
func (r Registry) Lookup(name string) (TypeDefinition, bool) {
	def, ok := r[name]
	return def, ok
}
