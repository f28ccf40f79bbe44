package cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fudini/bender/errors"
	"github.com/fudini/bender/schema"
)

func testRegistry() schema.Registry {
	return schema.NewRegistry([]schema.TypeDefinition{
		{Kind: schema.KindPrimitive, Name: "u8"},
		{Kind: schema.KindStruct, Name: "Header", Fields: []schema.Field{
			{Name: "version", Type: "u8"},
			{Name: "inner", Type: "Inner"},
		}},
		{Kind: schema.KindStruct, Name: "Inner", Fields: []schema.Field{
			{Name: "tag", Type: "u8"},
		}},
		{Kind: schema.KindStruct, Name: "Packet", Fields: []schema.Field{
			{Name: "header", Type: "Header"},
		}},
	})
}

func union(path ...string) schema.TypeDefinition {
	return schema.TypeDefinition{
		Kind:              schema.KindUnion,
		Name:              "Shape",
		DiscriminatorPath: path,
		Members:           []string{"Packet"},
	}
}

func TestResolveDiscriminator_SingleSegment(t *testing.T) {
	resolved, err := ResolveDiscriminator(union("header"), testRegistry())
	require.NoError(t, err)
	assert.Equal(t, "Header", resolved.Name)
	assert.Equal(t, schema.KindStruct, resolved.Kind)
}

func TestResolveDiscriminator_NestedPath(t *testing.T) {
	resolved, err := ResolveDiscriminator(union("header", "inner", "tag"), testRegistry())
	require.NoError(t, err)
	assert.Equal(t, "u8", resolved.Name)
}

func TestResolveDiscriminator_TerminalPrimitiveAllowed(t *testing.T) {
	// The struct check applies before each lookup, never after the last one
	resolved, err := ResolveDiscriminator(union("header", "version"), testRegistry())
	require.NoError(t, err)
	assert.Equal(t, schema.KindPrimitive, resolved.Kind)
}

func TestResolveDiscriminator_IntermediateNonStruct(t *testing.T) {
	_, err := ResolveDiscriminator(union("header", "version", "bits"), testRegistry())
	require.Error(t, err)

	var pathErr *PathResolutionError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "u8", pathErr.TypeName)
	assert.Equal(t, "bits", pathErr.Segment)
	assert.Equal(t, schema.KindPrimitive, pathErr.Actual)
	assert.Contains(t, err.Error(), "not a struct")
}

func TestResolveDiscriminator_MissingField(t *testing.T) {
	_, err := ResolveDiscriminator(union("checksum"), testRegistry())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolveDiscriminator_MissingMember(t *testing.T) {
	u := schema.TypeDefinition{
		Kind:              schema.KindUnion,
		Name:              "Shape",
		DiscriminatorPath: []string{"header"},
		Members:           []string{"Ghost"},
	}
	_, err := ResolveDiscriminator(u, testRegistry())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolveDiscriminator_MissingFieldType(t *testing.T) {
	reg := schema.NewRegistry([]schema.TypeDefinition{
		{Kind: schema.KindStruct, Name: "Packet", Fields: []schema.Field{
			{Name: "header", Type: "Missing"},
		}},
	})
	_, err := ResolveDiscriminator(union("header", "version"), reg)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Missing")
}

func TestResolveDiscriminator_SeedsFirstMemberOnly(t *testing.T) {
	// Additional members are not walked; only the first seeds the resolution
	u := schema.TypeDefinition{
		Kind:              schema.KindUnion,
		Name:              "Shape",
		DiscriminatorPath: []string{"header"},
		Members:           []string{"Packet", "Ghost"},
	}
	resolved, err := ResolveDiscriminator(u, testRegistry())
	require.NoError(t, err)
	assert.Equal(t, "Header", resolved.Name)
}
