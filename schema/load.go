package schema

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fudini/bender/errors"
)

// Document is the on-disk shape of a normalized schema file.
type Document struct {
	Types []TypeDefinition `yaml:"types"`
}

// LoadFile reads and decodes a normalized schema document from path.
func LoadFile(path string) ([]TypeDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open schema file %s", path)
	}
	defer f.Close()

	types, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "schema file %s", path)
	}
	return types, nil
}

// Load decodes a normalized schema document from r.
//
// Only document shape is checked here: known kind tags, required per-kind
// fields, positive array lengths. Registry consistency (unique names,
// resolvable references) is the upstream normalizer's contract and is not
// re-validated.
func Load(r io.Reader) ([]TypeDefinition, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidSchema, err.Error())
	}

	for i, def := range doc.Types {
		if err := checkShape(def); err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
	}

	return doc.Types, nil
}

// checkShape validates the per-kind required fields of a single entry.
func checkShape(def TypeDefinition) error {
	if def.Name == "" {
		return errors.NewInvalidSchemaError("missing type name")
	}
	if !def.Kind.Valid() {
		return errors.NewInvalidSchemaError("type %s: unknown kind %q", def.Name, def.Kind)
	}

	switch def.Kind {
	case KindAlias:
		if def.Target == "" {
			return errors.NewInvalidSchemaError("alias %s: missing target", def.Name)
		}
	case KindStruct:
		for _, f := range def.Fields {
			if f.Name == "" || f.Type == "" {
				return errors.NewInvalidSchemaError("struct %s: field needs name and type", def.Name)
			}
			if f.Length < 0 {
				return errors.NewInvalidSchemaError("struct %s: field %s has negative length", def.Name, f.Name)
			}
		}
	case KindEnum:
		if def.Underlying == "" {
			return errors.NewInvalidSchemaError("enum %s: missing underlying type", def.Name)
		}
		for _, v := range def.Variants {
			if v.Name == "" {
				return errors.NewInvalidSchemaError("enum %s: variant needs a name", def.Name)
			}
		}
	case KindUnion:
		if len(def.Members) == 0 {
			return errors.NewInvalidSchemaError("union %s: needs at least one member", def.Name)
		}
		if len(def.DiscriminatorPath) == 0 {
			return errors.NewInvalidSchemaError("union %s: missing discriminator path", def.Name)
		}
	}

	return nil
}
