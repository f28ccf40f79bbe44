package cpp

import (
	"fmt"

	"github.com/fudini/bender/errors"
	"github.com/fudini/bender/schema"
)

// PathResolutionError reports a discriminator path segment that landed on a
// type that cannot be traversed further. It is fatal to the generation call:
// no output is produced, and retrying without correcting the schema is
// pointless.
type PathResolutionError struct {
	Union    string      // union whose discriminator was being resolved
	TypeName string      // offending type
	Segment  string      // path segment that triggered the failure
	Actual   schema.Kind // kind found where a struct was required
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("union %s: cannot resolve discriminator segment %q: type %s is a %s, not a struct",
		e.Union, e.Segment, e.TypeName, e.Actual)
}

// ResolveDiscriminator determines the declared type of the field that tags
// the union's active member, by walking the discriminator path through
// nested struct definitions.
//
// The walk is seeded with the union's first listed member; members are not
// cross-checked for a shared discriminator type. Each intermediate segment
// must land on a struct. The terminal segment may resolve to any kind: the
// struct check applies before a segment is looked up, never after the last
// one.
//
// The result validates the schema but does not shape the emitted union text.
func ResolveDiscriminator(def schema.TypeDefinition, reg schema.Registry) (schema.TypeDefinition, error) {
	current, ok := reg.Lookup(def.Members[0])
	if !ok {
		return schema.TypeDefinition{}, errors.NewNotFoundError(
			"union %s: member %s not in registry", def.Name, def.Members[0])
	}

	for _, segment := range def.DiscriminatorPath {
		if current.Kind != schema.KindStruct {
			return schema.TypeDefinition{}, &PathResolutionError{
				Union:    def.Name,
				TypeName: current.Name,
				Segment:  segment,
				Actual:   current.Kind,
			}
		}

		field, ok := current.FieldByName(segment)
		if !ok {
			return schema.TypeDefinition{}, errors.NewNotFoundError(
				"union %s: struct %s has no field %q", def.Name, current.Name, segment)
		}

		next, ok := reg.Lookup(field.Type)
		if !ok {
			return schema.TypeDefinition{}, errors.NewNotFoundError(
				"union %s: field %s.%s references unknown type %s",
				def.Name, current.Name, segment, field.Type)
		}
		current = next
	}

	return current, nil
}
